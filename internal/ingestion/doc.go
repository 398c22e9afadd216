package ingestion

import "strings"

// minDocRun filters out the short printable fragments that occur by chance
// inside binary structures.
const minDocRun = 5

// extractDoc pulls readable text out of a legacy Word binary. The OLE2
// container is not parsed; instead the file is scanned for runs of printable
// characters in both single-byte and UTF-16LE encodings, and the richer of
// the two scans wins. This recovers resume body text reliably even though
// formatting is lost.
func extractDoc(data []byte) string {
	ascii := printableRuns(data)
	wide := printableRunsUTF16(data)
	if len(wide) > len(ascii) {
		return wide
	}
	return ascii
}

func printableRuns(data []byte) string {
	var sb strings.Builder
	run := make([]byte, 0, 256)
	flush := func() {
		if len(run) >= minDocRun {
			sb.Write(run)
			sb.WriteByte('\n')
		}
		run = run[:0]
	}
	for _, b := range data {
		if isDocPrintable(b) {
			run = append(run, b)
		} else {
			flush()
		}
	}
	flush()
	return sb.String()
}

func printableRunsUTF16(data []byte) string {
	var sb strings.Builder
	run := make([]byte, 0, 256)
	flush := func() {
		if len(run) >= minDocRun {
			sb.Write(run)
			sb.WriteByte('\n')
		}
		run = run[:0]
	}
	for i := 0; i+1 < len(data); i += 2 {
		lo, hi := data[i], data[i+1]
		if hi == 0 && isDocPrintable(lo) {
			run = append(run, lo)
		} else {
			flush()
		}
	}
	flush()
	return sb.String()
}

func isDocPrintable(b byte) bool {
	return (b >= 0x20 && b < 0x7f) || b == '\t'
}
