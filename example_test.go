package sift_test

import (
	"fmt"
	"log"

	"github.com/jpl-au/sift"
)

func Example() {
	data := []byte("foo\nbar\nfoobar\n")

	// One record per line
	r, err := sift.New(data, sift.Offsets(data, sift.RecordDelim))
	if err != nil {
		log.Fatal(err)
	}

	offsets, _ := r.MatchingRecordOffsets([]byte("foo"))
	fmt.Println(offsets)

	records, _ := r.MatchingRecords([]byte("foo"))
	for _, rec := range records {
		fmt.Println(string(rec))
	}
	// Output: [0 8]
	// foo
	// foobar
}

func ExampleRecords_MatchCount() {
	data := []byte("error: disk\ninfo: ok\nerror: net\nerror: disk\n")
	r, _ := sift.New(data, sift.Offsets(data, sift.RecordDelim))

	n, _ := r.MatchCount([]byte("error: disk"))
	fmt.Println(n)
	// Output: 2
}

func ExampleRecords_MatchingRecordsByPattern() {
	data := []byte("GET /a 200\nPOST /b 500\nGET /c 503\n")
	r, _ := sift.New(data, sift.Offsets(data, sift.RecordDelim))

	records, err := r.MatchingRecordsByPattern(` 5\d\d$`)
	if err != nil {
		log.Fatal(err)
	}
	for _, rec := range records {
		fmt.Println(string(rec))
	}

	_, err = r.MatchingRecordsByPattern("(unclosed")
	fmt.Println(err != nil)
	// Output: POST /b 500
	// GET /c 503
	// true
}

func ExampleRecords_ExtractFields() {
	data := []byte("2024-01-01 start\n2024-01-02 stop\n")
	r, _ := sift.New(data, sift.Offsets(data, sift.RecordDelim))

	// Fixed-width date prefix of every record
	dates, _ := r.ExtractFields(0, 10)
	for _, d := range dates {
		fmt.Println(string(d))
	}
	// Output: 2024-01-01
	// 2024-01-02
}

func ExampleWrap() {
	data := []byte("alpha\nbeta\n")
	buf, err := sift.Build(data, sift.Config{BlockSize: 4})
	if err != nil {
		log.Fatal(err)
	}

	r, _ := sift.Wrap(buf, []int64{0, 6})
	rec, _ := r.Record(1)
	fmt.Println(string(rec))
	// Output: beta
}
