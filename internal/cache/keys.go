package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Key joins parts with ":".
func Key(parts ...any) string {
	s := make([]string, 0, len(parts))
	for _, p := range parts {
		s = append(s, fmt.Sprint(p))
	}
	return strings.Join(s, ":")
}

// PaginatedKey builds base:page:N:k1=v1:k2=v2 with filters sorted by name.
// Values are query-escaped. Empty filter values are skipped so "no filter" and
// "empty filter" share a key.
func PaginatedKey(base string, page int, filters map[string]string) string {
	names := make([]string, 0, len(filters))
	for k, v := range filters {
		if v != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(base)
	b.WriteString(":page:")
	b.WriteString(strconv.Itoa(page))
	for _, k := range names {
		b.WriteString(":")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(url.QueryEscape(filters[k]))
	}
	return b.String()
}

// Invalidation tags.
const (
	TagBeneficiaryList = "beneficiary:list:all"
	TagRequestList     = "request:list:all"
)

func TagBeneficiaryDetail(id int64) string {
	return Key("beneficiary", "detail", id)
}

func TagRequestDetail(id int64) string {
	return Key("request", "detail", id)
}

// TagBeneficiaryRequests covers the request lists a beneficiary sees.
func TagBeneficiaryRequests(beneficiaryID int64) string {
	return Key("beneficiary", "request", "list", beneficiaryID)
}

func TagBeneficiaryAnnouncements(beneficiaryID int64) string {
	return Key("beneficiary", "announcement", "list", beneficiaryID)
}
