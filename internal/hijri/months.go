package hijri

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

var monthNames = [12]string{
	"Muharram",
	"Safar",
	"Rabi al-Awwal",
	"Rabi al-Thani",
	"Jumada al-Awwal",
	"Jumada al-Thani",
	"Rajab",
	"Shaban",
	"Ramadan",
	"Shawwal",
	"Dhu al-Qadah",
	"Dhu al-Hijjah",
}

var monthNamesArabic = [12]string{
	"محرم",
	"صفر",
	"ربيع الأول",
	"ربيع الثاني",
	"جمادى الأولى",
	"جمادى الآخرة",
	"رجب",
	"شعبان",
	"رمضان",
	"شوال",
	"ذو القعدة",
	"ذو الحجة",
}

// MonthName returns the transliterated month name, or "" for invalid m.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m-1]
}

// MonthNameArabic returns the Arabic month name, or "" for invalid m.
func MonthNameArabic(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNamesArabic[m-1]
}

// ParseMonth resolves a month from a numeric string ("9"), an exact or
// prefix name ("Ramadan", "ram"), or a fuzzy match ("dhuhij"). Returns the
// month 1..12.
func ParseMonth(val string) (int, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, fmt.Errorf("empty month")
	}

	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month number: %d", n)
		}
		return n, nil
	}

	lc := strings.ToLower(val)
	for i, name := range monthNames {
		if strings.HasPrefix(strings.ToLower(name), lc) {
			return i + 1, nil
		}
	}

	matches := fuzzy.Find(val, monthNames[:])
	if len(matches) == 0 {
		return 0, fmt.Errorf("unknown month: %q", val)
	}
	return matches[0].Index + 1, nil
}
