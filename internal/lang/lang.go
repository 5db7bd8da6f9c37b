// Package lang maps file extensions to the numeric language codes BOJ
// expects on submission. The judge does not detect languages itself;
// every submission carries one of these codes.
package lang

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Fallback is submitted when nothing better can be resolved.
// It corresponds to C++14 via g++.
const Fallback = 88

// Config supplies optional per-language compiler/version overrides.
// ok is false when the user has no section for the language.
type Config interface {
	Language(name string) (compiler, version string, ok bool)
}

// Resolve picks the language code for a file extension. It never fails:
// an invalid compiler or version in the config is logged and the global
// fallback is returned instead.
func Resolve(ext string, cfg Config) int {
	switch ext {
	case ".cc", ".cpp", ".c++":
		return resolveCpp(cfg)
	case ".c":
		return resolveC(cfg)
	case ".py":
		return resolvePython(cfg)
	case ".java":
		return resolveJava(cfg)
	case ".txt":
		return 58
	case ".js":
		return 17
	case ".aheui":
		return 83
	}
	return Fallback
}

func resolveCpp(cfg Config) int {
	compiler, version, ok := cfg.Language("C++")
	if !ok {
		return 88 // C++14
	}
	if compiler == "" {
		compiler = "g++"
	}
	if version == "" {
		version = "C++14"
	}
	switch strings.ToLower(compiler) {
	case "g++":
		switch {
		case strings.Contains(version, "11"):
			return 49
		case strings.Contains(version, "14"):
			return 88
		case strings.Contains(version, "17"):
			return 84
		}
		logrus.Errorf("invalid C++ version: %s", version)
	case "clang":
		switch {
		case strings.Contains(version, "11"):
			return 66
		case strings.Contains(version, "14"):
			return 67
		case strings.Contains(version, "17"):
			return 85
		}
		logrus.Errorf("invalid C++ version: %s", version)
	default:
		logrus.Errorf("invalid C++ compiler: %s", compiler)
	}
	return Fallback
}

func resolveC(cfg Config) int {
	compiler, version, ok := cfg.Language("C")
	if !ok {
		return 75 // C11
	}
	if compiler == "" {
		compiler = "gcc"
	}
	if version == "" {
		version = "C11"
	}
	switch strings.ToLower(compiler) {
	case "gcc":
		switch {
		case strings.Contains(version, "11"):
			return 75
		case version == "C":
			return 0
		}
		logrus.Errorf("invalid C version: %s", version)
	case "clang":
		switch {
		case strings.Contains(version, "11"):
			return 77
		case version == "C":
			return 59
		}
		logrus.Errorf("invalid C version: %s", version)
	default:
		logrus.Errorf("invalid C compiler: %s", compiler)
	}
	return Fallback
}

func resolvePython(cfg Config) int {
	compiler, version, ok := cfg.Language("Python")
	if !ok {
		return 28 // CPython 3
	}
	if compiler == "" {
		compiler = "CPython"
	}
	if version == "" {
		version = "3"
	}
	switch strings.ToLower(compiler) {
	case "cpython":
		switch {
		case strings.Contains(version, "2"):
			return 6
		case strings.Contains(version, "3"):
			return 28
		}
		logrus.Errorf("invalid Python version: %s", version)
	case "pypy":
		switch {
		case strings.Contains(version, "2"):
			return 32
		case strings.Contains(version, "3"):
			return 73
		}
		logrus.Errorf("invalid Python version: %s", version)
	default:
		logrus.Errorf("invalid Python interpreter: %s", compiler)
	}
	return Fallback
}

func resolveJava(cfg Config) int {
	compiler, _, ok := cfg.Language("Java")
	if !ok {
		return 3 // Oracle
	}
	if compiler == "" {
		compiler = "Oracle"
	}
	switch strings.ToLower(compiler) {
	case "oracle":
		return 3
	case "openjdk":
		return 91
	}
	logrus.Errorf("invalid Java compiler: %s", compiler)
	return Fallback
}
