package view

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cam-per/binview/utils"
	"github.com/dustin/go-humanize"
)

// Encoder writes the grid representation of a byte buffer.
type Encoder struct {
	w   *bufio.Writer
	cfg Config
}

func NewEncoder(w io.Writer, cfg Config) *Encoder {
	return &Encoder{
		w:   bufio.NewWriter(w),
		cfg: cfg,
	}
}

type renderState struct {
	byteIndex int
	row       int
	rowStart  int
}

// Encode writes buf as rows of cfg.BytesPerRow tokens. Nothing is written
// when the configuration is invalid. A row that ends on the last byte is
// not followed by a line break or a new label.
func (encoder *Encoder) Encode(buf []byte) error {
	if err := encoder.cfg.Validate(); err != nil {
		return err
	}

	if !encoder.cfg.Plain {
		encoder.writeHeader(len(buf))
		encoder.writeLabel(0)
	}

	var st renderState
	token := make([]byte, 0, 4)
	perRow := encoder.cfg.BytesPerRow
	for st.byteIndex < len(buf) {
		token = encoder.cfg.Format.appendToken(token[:0], buf[st.byteIndex])
		if _, err := encoder.w.Write(token); err != nil {
			return err
		}
		st.byteIndex++

		if st.byteIndex%perRow == 0 && st.byteIndex < len(buf) {
			encoder.writeText(buf[st.rowStart:st.byteIndex])
			st.row++
			st.rowStart = st.byteIndex
			encoder.w.WriteByte('\n')
			if !encoder.cfg.Plain {
				encoder.writeLabel(st.row)
			}
		}
	}
	if st.byteIndex > st.rowStart {
		encoder.writeText(buf[st.rowStart:st.byteIndex])
	}

	return encoder.w.Flush()
}

func (encoder *Encoder) writeHeader(size int) {
	fmt.Fprintf(encoder.w, "file: %s\n", encoder.cfg.FilePath)
	if encoder.cfg.HumanSize {
		fmt.Fprintf(encoder.w, "size: %d byte/s (%s)\n", size, humanize.IBytes(uint64(size)))
	} else {
		fmt.Fprintf(encoder.w, "size: %d byte/s\n", size)
	}
	fmt.Fprintf(encoder.w, "format: %s\n", encoder.cfg.Format)
}

func (encoder *Encoder) writeLabel(row int) {
	encoder.w.WriteString(strconv.Itoa(row + 1))
	encoder.w.WriteString(" | ")
}

// writeText pads a short row up to the full width and appends its
// printable form.
func (encoder *Encoder) writeText(row []byte) {
	if !encoder.cfg.Text {
		return
	}
	for i := len(row); i < encoder.cfg.BytesPerRow; i++ {
		for j := 0; j < encoder.cfg.Format.tokenWidth(); j++ {
			encoder.w.WriteByte(' ')
		}
	}
	encoder.w.WriteString("|")
	encoder.w.WriteString(utils.Printable(row, encoder.cfg.Charmap))
	encoder.w.WriteString("|")
}
