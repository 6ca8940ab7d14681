package property

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/zhubert/stave/internal/mpd"
)

// FormatSong renders a single song property. Absence of the underlying field
// is a failure, never an empty string.
func FormatSong(s *mpd.Song, p SongProperty, separator string, strategy Strategy) (string, bool) {
	if s == nil {
		return "", false
	}
	switch p.Field {
	case FieldFilename:
		return s.FileName()
	case FieldFileExtension:
		return s.FileExt()
	case FieldFile:
		return s.File, true
	case FieldTitle:
		return resolveTag(s, mpd.TagTitle, separator, strategy)
	case FieldArtist:
		return resolveTag(s, mpd.TagArtist, separator, strategy)
	case FieldAlbum:
		return resolveTag(s, mpd.TagAlbum, separator, strategy)
	case FieldOther:
		return resolveTag(s, p.Tag, separator, strategy)
	case FieldDuration:
		if s.Duration == nil {
			return "", false
		}
		return FormatDuration(*s.Duration), true
	case FieldDisc:
		return s.Metadata.Last(mpd.TagDisc)
	case FieldTrack:
		v, ok := s.Metadata.Last(mpd.TagTrack)
		if !ok {
			return "", false
		}
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return fmt.Sprintf("%02d", n), true
		}
		return v, true
	default:
		return "", false
	}
}

func resolveTag(s *mpd.Song, tag, separator string, strategy Strategy) (string, bool) {
	values, ok := s.Metadata.Get(tag)
	if !ok {
		return "", false
	}
	return strategy.Resolve(values, separator)
}

// Compare orders a and b by property p. Text fields compare ignoring case;
// track and disc compare numerically when both sides parse. A song lacking
// the field sorts after one that has it, and two songs lacking it are equal.
func Compare(a, b *mpd.Song, p SongProperty) int {
	switch p.Field {
	case FieldFilename:
		x, xok := a.FileName()
		y, yok := b.FileName()
		return comparePresent(x, xok, y, yok, CompareFold)
	case FieldFileExtension:
		x, xok := a.FileExt()
		y, yok := b.FileExt()
		return comparePresent(x, xok, y, yok, CompareFold)
	case FieldFile:
		return CompareFold(a.File, b.File)
	case FieldTitle:
		return compareTag(a, b, mpd.TagTitle, CompareFold)
	case FieldArtist:
		return compareTag(a, b, mpd.TagArtist, CompareFold)
	case FieldAlbum:
		return compareTag(a, b, mpd.TagAlbum, CompareFold)
	case FieldOther:
		return compareTag(a, b, p.Tag, CompareFold)
	case FieldTrack:
		return compareTag(a, b, mpd.TagTrack, compareNumeric)
	case FieldDisc:
		return compareTag(a, b, mpd.TagDisc, compareNumeric)
	case FieldDuration:
		switch {
		case a.Duration != nil && b.Duration != nil:
			return cmp.Compare(a.Duration.Milliseconds(), b.Duration.Milliseconds())
		case a.Duration != nil:
			return -1
		case b.Duration != nil:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}

func compareTag(a, b *mpd.Song, tag string, fn func(x, y string) int) int {
	xv, xok := a.Metadata.Get(tag)
	yv, yok := b.Metadata.Get(tag)
	return comparePresent(strings.Join(xv, ""), xok, strings.Join(yv, ""), yok, fn)
}

func comparePresent(x string, xok bool, y string, yok bool, fn func(x, y string) int) int {
	switch {
	case xok && yok:
		return fn(x, y)
	case xok:
		return -1
	case yok:
		return 1
	default:
		return 0
	}
}

func compareNumeric(x, y string) int {
	xn, xerr := strconv.ParseInt(x, 10, 32)
	yn, yerr := strconv.ParseInt(y, 10, 32)
	if xerr == nil && yerr == nil {
		return cmp.Compare(xn, yn)
	}
	return CompareFold(x, y)
}
