// Command pixprobe sniffs the image format of files from their magic
// bytes and prints what the format supports.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/pix"
)

func main() {
	var (
		showCaps = flag.Bool("caps", false, "print format capabilities")
		byExt    = flag.Bool("ext", false, "also report the extension-based guess")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: pixprobe [-caps] [-ext] file...")
	}

	for _, path := range flag.Args() {
		if err := probe(path, *showCaps, *byExt); err != nil {
			log.Printf("%s: %v", path, err)
		}
	}
}

func probe(path string, showCaps, byExt bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, pix.RecommendedProbeBytes)
	n, err := f.Read(head)
	if n == 0 && err != nil {
		return err
	}

	format := pix.DetectFormat(head[:n])
	fmt.Printf("%s: %s", path, format)
	if format.IsValid() {
		fmt.Printf(" (%s)", format.MimeType())
	}
	fmt.Println()

	if byExt {
		ext := ""
		for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
			if path[i] == '.' {
				ext = path[i+1:]
				break
			}
		}
		fmt.Printf("  extension guess: %s\n", pix.FormatFromExtension(ext))
	}

	if showCaps && format.IsValid() {
		fmt.Printf("  lossy=%v lossless=%v animation=%v alpha=%v probe>=%dB\n",
			format.SupportsLossy(), format.SupportsLossless(),
			format.SupportsAnimation(), format.SupportsAlpha(),
			format.MinProbeBytes())
	}
	return nil
}
