package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/eslsoft/vocquiz/pkg/filterexpr"
	"github.com/eslsoft/vocquiz/pkg/sampler"
)

// DefaultRetention is how many recently asked records are kept out of the draw.
const DefaultRetention = 10

// Setting keys accepted by Settings.Set.
const (
	SettingSound                 = "sound"
	SettingTestRange             = "test_range"
	SettingDistribution          = "distribution"
	SettingDictationDistribution = "dictation_distribution"
	SettingRetention             = "retention"
	SettingLanguage              = "language"
	SettingFilter                = "filter"
)

// SettingKeys lists the keys in display order.
func SettingKeys() []string {
	return []string{
		SettingSound,
		SettingTestRange,
		SettingDistribution,
		SettingDictationDistribution,
		SettingRetention,
		SettingLanguage,
		SettingFilter,
	}
}

// Range is a half-open [Start, End) window over the dictionary.
// A negative End leaves the window open to the end of the dictionary.
type Range struct {
	Start int
	End   int
}

// FullRange covers the whole dictionary.
var FullRange = Range{Start: 0, End: -1}

// Bounds clamps the range to a dictionary of n records.
func (r Range) Bounds(n int) (start, end int) {
	start = min(max(r.Start, 0), n)
	end = n
	if r.End >= 0 {
		end = min(r.End, n)
	}
	if end < start {
		end = start
	}
	return start, end
}

func (r Range) IsFull() bool { return r.Start == 0 && r.End < 0 }

func (r Range) String() string {
	switch {
	case r.IsFull():
		return "all"
	case r.End < 0:
		return fmt.Sprintf("%d,", r.Start)
	default:
		return fmt.Sprintf("%d,%d", r.Start, r.End)
	}
}

// ParseRange reads "start,end", "start," or "all". "start:end" is accepted too.
func ParseRange(value string) (Range, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return FullRange, nil
	}
	sep := ","
	if !strings.Contains(value, sep) {
		sep = ":"
	}
	rawStart, rawEnd, ok := strings.Cut(value, sep)
	if !ok {
		return Range{}, fmt.Errorf("test_range %q: expected start,end", value)
	}
	start, err := strconv.Atoi(strings.TrimSpace(rawStart))
	if err != nil || start < 0 {
		return Range{}, fmt.Errorf("test_range %q: start must be a non-negative integer", value)
	}
	rawEnd = strings.TrimSpace(rawEnd)
	if rawEnd == "" {
		return Range{Start: start, End: -1}, nil
	}
	end, err := strconv.Atoi(rawEnd)
	if err != nil || end <= start {
		return Range{}, fmt.Errorf("test_range %q: end must be an integer greater than start", value)
	}
	return Range{Start: start, End: end}, nil
}

// Settings are the learner-adjustable knobs of a quiz session.
type Settings struct {
	Sound                 bool
	TestRange             Range
	Distribution          sampler.Distribution
	DictationDistribution sampler.Distribution
	Retention             int
	Language              Language
	Filter                string
}

func DefaultSettings() Settings {
	return Settings{
		TestRange:             FullRange,
		Distribution:          sampler.SigmoidIncreasing,
		DictationDistribution: sampler.SigmoidIncreasing,
		Retention:             DefaultRetention,
		Language:              LanguageChinese,
	}
}

// Set applies one "key=value" assignment. On error the settings are left unchanged
// and the returned error wraps ErrInvalidSetting.
func (s *Settings) Set(assignment string) error {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("%w: expected key=value, got %q", ErrInvalidSetting, assignment)
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	next := *s
	switch key {
	case SettingSound:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("%w: sound %q is not a boolean", ErrInvalidSetting, value)
		}
		next.Sound = b
	case SettingTestRange:
		r, err := ParseRange(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
		}
		next.TestRange = r
	case SettingDistribution, SettingDictationDistribution:
		d, err := sampler.ParseDistribution(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
		}
		if key == SettingDistribution {
			next.Distribution = d
		} else {
			next.DictationDistribution = d
		}
	case SettingRetention:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: retention %q must be a non-negative integer", ErrInvalidSetting, value)
		}
		next.Retention = n
	case SettingLanguage:
		lang := ParseLanguage(value)
		if lang == LanguageUnspecified {
			return fmt.Errorf("%w: unsupported language %q", ErrInvalidSetting, value)
		}
		next.Language = lang
	case SettingFilter:
		if value != "" {
			if _, err := filterexpr.CompileRecordFilter(value); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
			}
		}
		next.Filter = value
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidSetting, key)
	}
	*s = next
	return nil
}

// Get renders the current value of key.
func (s Settings) Get(key string) (string, bool) {
	switch key {
	case SettingSound:
		return strconv.FormatBool(s.Sound), true
	case SettingTestRange:
		return s.TestRange.String(), true
	case SettingDistribution:
		return s.Distribution.String(), true
	case SettingDictationDistribution:
		return s.DictationDistribution.String(), true
	case SettingRetention:
		return strconv.Itoa(s.Retention), true
	case SettingLanguage:
		return s.Language.CodeOrDefault(), true
	case SettingFilter:
		return s.Filter, true
	default:
		return "", false
	}
}

// String renders one key=value line per setting.
func (s Settings) String() string {
	var b strings.Builder
	for _, key := range SettingKeys() {
		v, _ := s.Get(key)
		fmt.Fprintf(&b, "%s=%s\n", key, v)
	}
	return b.String()
}
