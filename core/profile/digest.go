// core/profile/digest.go
package profile

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/snksoft/crc"
)

// Digest is a CRC-32 over the canonical form of the table (header plus rows,
// comma-joined, newline-terminated). Two tables with the same markers, rows
// and row order share a digest regardless of source formatting.
func (t *Table) Digest() string {
	var b bytes.Buffer
	b.WriteString("name")
	for _, m := range t.Markers {
		b.WriteByte(',')
		b.WriteString(m)
	}
	b.WriteByte('\n')
	for _, r := range t.Rows {
		b.WriteString(r.Name)
		for _, c := range r.Counts {
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(c))
		}
		b.WriteByte('\n')
	}
	return fmt.Sprintf("crc32:%08x", crc.CalculateCRC(crc.CRC32, b.Bytes()))
}
