// Package config loads assembler settings from a starlark script.
//
// A settings script is plain starlark. It may bind any of the globals
// below; globals it does not bind keep their defaults, and globals with
// other names are ignored.
//
//	depth = 1024        # memory depth, in words
//	extension = ".hex"  # output file extension
//	comments = False    # omit source annotations
//	fill = 0xFFFFFFFF   # value of unused words
//
// The script sees the predeclared constants WIDTH and DEPTH, so that
// `depth = DEPTH * 4` works.
package config

import (
	"log"
	"os"
	"path/filepath"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mifasm/mif"
)

// DEFAULT_FILE is the settings script looked for next to the input.
const DEFAULT_FILE = "mifasm.star"

// Config holds the assembler output settings.
type Config struct {
	Verbose bool // If set, logs each setting as it is loaded.

	Depth     int    // Memory depth in words.
	Extension string // Output file extension.
	Comments  bool   // Annotate words with their source line.
	Fill      uint32 // Value of the words past the program.
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Depth:     mif.DEPTH,
		Extension: mif.EXTENSION,
		Comments:  true,
	}
}

// Find returns the settings script next to input, or "" if there is none.
func Find(input string) string {
	path := filepath.Join(filepath.Dir(input), DEFAULT_FILE)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}
	return path
}

// LoadFile applies the settings script at filename.
func (cfg *Config) LoadFile(filename string) (err error) {
	return cfg.Load(filename, nil)
}

// Load applies a settings script. As with starlark.ExecFile, src may be
// a string, a []byte, an io.Reader, or nil to read filename.
func (cfg *Config) Load(filename string, src any) (err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"WIDTH": starlark.MakeInt(mif.WIDTH),
		"DEPTH": starlark.MakeInt(mif.DEPTH),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	if value, ok := dict["depth"]; ok {
		var depth int64
		depth, err = toInt("depth", value)
		if err != nil {
			return
		}
		if depth < 1 || depth > mif.DEPTH_MAX {
			err = &ErrRange{Name: "depth", Value: value.String()}
			return
		}
		cfg.Depth = int(depth)
	}

	if value, ok := dict["extension"]; ok {
		ext, isString := value.(starlark.String)
		if !isString {
			err = &ErrType{Name: "extension", Want: "string", Got: value.Type()}
			return
		}
		if len(ext) == 0 {
			err = &ErrRange{Name: "extension", Value: value.String()}
			return
		}
		cfg.Extension = string(ext)
	}

	if value, ok := dict["comments"]; ok {
		comments, isBool := value.(starlark.Bool)
		if !isBool {
			err = &ErrType{Name: "comments", Want: "bool", Got: value.Type()}
			return
		}
		cfg.Comments = bool(comments)
	}

	if value, ok := dict["fill"]; ok {
		var fill int64
		fill, err = toInt("fill", value)
		if err != nil {
			return
		}
		if fill < 0 || fill > 0xffffffff {
			err = &ErrRange{Name: "fill", Value: value.String()}
			return
		}
		cfg.Fill = uint32(fill)
	}

	if cfg.Verbose {
		log.Printf("config: %v: depth=%d extension=%q comments=%v fill=%#x",
			filename, cfg.Depth, cfg.Extension, cfg.Comments, cfg.Fill)
	}

	return
}

// toInt converts a starlark int setting.
func toInt(name string, value starlark.Value) (i64 int64, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = &ErrType{Name: name, Want: "int", Got: value.Type()}
		return
	}
	i64, ok = st_int.Int64()
	if !ok {
		err = &ErrRange{Name: name, Value: value.String()}
		return
	}
	return
}

// Image returns an empty memory image using the settings.
func (cfg *Config) Image() *mif.Image {
	img := mif.NewImage()
	img.Depth = cfg.Depth
	img.Fill = cfg.Fill
	img.Comments = cfg.Comments
	return img
}

// OutputName returns the output file name for input.
func (cfg *Config) OutputName(input string) string {
	return mif.OutputName(input, cfg.Extension)
}
