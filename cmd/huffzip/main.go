// Command huffzip compresses and decompresses single files.
//
//	huffzip encode FILE        writes FILE.huff
//	huffzip decode FILE.huff   writes FILE
//	huffzip stats  FILE        prints code statistics without compressing
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rickm/huffzip"
	"github.com/rickm/huffzip/service"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) != 3 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = encode(os.Args[2])
	case "decode":
		err = decode(os.Args[2])
	case "stats":
		err = stats(os.Args[2])
	default:
		usage()
	}
	if err != nil {
		log.Fatalf("huffzip: %v", err)
	}
}

func usage() {
	log.Fatalf("usage: huffzip encode|decode|stats FILE")
}

func encode(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	blob, err := huffzip.Compress(data)
	if err != nil {
		return err
	}
	out := service.CompressedName(path)
	if err := os.WriteFile(out, blob, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d -> %d bytes (%.1f%%)\n", out, len(data), len(blob), percentOf(len(blob), len(data)))
	return nil
}

func decode(path string) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	data, err := huffzip.Decompress(blob)
	if err != nil {
		return err
	}
	out := service.RestoredName(path)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d -> %d bytes\n", out, len(blob), len(data))
	return nil
}

func stats(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s := huffzip.Analyze(data)
	fmt.Printf("unique symbols:      %d\n", s.UniqueSymbols)
	fmt.Printf("total symbols:       %d\n", s.TotalSymbols)
	fmt.Printf("average code length: %.3f bits\n", s.AverageCodeLength)
	fmt.Printf("code length range:   %d..%d bits\n", s.MinCodeLength, s.MaxCodeLength)
	fmt.Printf("theoretical ratio:   %.3f\n", s.TheoreticalRatio)
	return nil
}

func percentOf(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
