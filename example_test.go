package zipstore_test

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/meigma/zipstore"
)

func Example() {
	var buf bytes.Buffer
	w := zipstore.New(&buf)

	if err := w.Add("test.txt", []byte("hello world")); err != nil {
		panic(err)
	}
	if err := w.Finish(); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}

	fmt.Println("entries:", 1)
	fmt.Println("bytes:", buf.Len())
	// Output:
	// entries: 1
	// bytes: 143
}

func ExampleWriter_AddReader() {
	var buf bytes.Buffer
	w := zipstore.New(&buf)

	// Stream content of unknown size; the sizes and checksum follow the
	// content in a data descriptor record.
	err := w.AddReader("report.txt", strings.NewReader("generated on the fly"),
		zipstore.EntryWithModTime(time.Date(2024, 11, 2, 14, 30, 44, 0, time.UTC)),
		zipstore.EntryWithComment("nightly report"),
	)
	if err != nil {
		panic(err)
	}
	if err := w.Finish(); err != nil {
		panic(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		panic(err)
	}
	for _, f := range zr.File {
		fmt.Printf("%s %d %q\n", f.Name, f.UncompressedSize64, f.Comment)
	}
	// Output:
	// report.txt 20 "nightly report"
}

func ExampleWriterFunc() {
	var sunk int
	w := zipstore.New(zipstore.WriterFunc(func(p []byte) (int, error) {
		sunk += len(p)
		return len(p), nil
	}))

	if err := w.AddDir("empty folder"); err != nil {
		panic(err)
	}
	if err := w.Finish(); err != nil {
		panic(err)
	}

	fmt.Println(sunk == int(w.Offset()))
	// Output:
	// true
}
