package tablebase

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// The cache file is the raw little-endian dump of every table word, so a
// load only works against a table of the same exponent. The compressed
// variant wraps the same byte stream in zstd; since almost every word is
// the empty sentinel, the 4 GiB default table typically shrinks to a few
// hundred megabytes.

// CacheFilename is the uncompressed cache name for this solver's
// variant, e.g. gobblet_3_2_1.dat.
func (s *Solver) CacheFilename() string {
	return fmt.Sprintf("gobblet_%s.dat", s.rules)
}

func (s *Solver) loadCache() error {
	name := filepath.Join(s.opts.DataPath, s.CacheFilename())
	f, err := os.Open(name)
	if err == nil {
		defer f.Close()
		log.Info().Str("filename", name).Msg("loading-cache")
		return s.table.readFrom(bufio.NewReaderSize(f, 1<<20))
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	zf, zerr := os.Open(name + ".zst")
	if zerr != nil {
		// Neither file: report the original not-exist.
		return err
	}
	defer zf.Close()
	zr, zerr := zstd.NewReader(zf)
	if zerr != nil {
		return zerr
	}
	defer zr.Close()
	log.Info().Str("filename", name+".zst").Msg("loading-compressed-cache")
	return s.table.readFrom(zr)
}

func (s *Solver) saveCache() error {
	name := filepath.Join(s.opts.DataPath, s.CacheFilename())
	if s.opts.Compress {
		name += ".zst"
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 1<<20)
	var w io.Writer = bw
	var zw *zstd.Encoder
	if s.opts.Compress {
		zw, err = zstd.NewWriter(bw)
		if err != nil {
			return err
		}
		w = zw
	}
	if err := s.table.writeTo(w); err != nil {
		return err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	log.Info().Str("filename", name).Msg("wrote-cache")
	return nil
}

const ioChunkWords = 1 << 16

func (t *Table) writeTo(w io.Writer) error {
	buf := make([]byte, 8*ioChunkWords)
	for off := 0; off < len(t.words); off += ioChunkWords {
		words := t.words[off:min(off+ioChunkWords, len(t.words))]
		for i, word := range words {
			binary.LittleEndian.PutUint64(buf[8*i:], word)
		}
		if _, err := w.Write(buf[:8*len(words)]); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) readFrom(r io.Reader) error {
	buf := make([]byte, 8*ioChunkWords)
	for off := 0; off < len(t.words); off += ioChunkWords {
		words := t.words[off:min(off+ioChunkWords, len(t.words))]
		if _, err := io.ReadFull(r, buf[:8*len(words)]); err != nil {
			return err
		}
		for i := range words {
			words[i] = binary.LittleEndian.Uint64(buf[8*i:])
		}
	}
	return nil
}
