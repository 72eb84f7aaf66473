package api

import (
	"net/url"
	"strconv"
)

// Params is the outbound parameter mapping of one API call. Values are
// kept as strings since both transports speak form encoding; numeric
// and boolean options are coerced at the point they are set.
//
// Optional setters skip zero values so an unset option never reaches
// the wire. Servers treat an empty cursor (and some empty options) as a
// distinct value rather than an omission, so the form encoder drops
// empty values as a second line of defense.
type Params map[string]string

func (p Params) set(key, value string) {
	p[key] = value
}

func (p Params) setOptional(key, value string) {
	if len(value) == 0 {
		return
	}
	p[key] = value
}

func (p Params) setOptionalInt(key string, value int) {
	if value == 0 {
		return
	}
	p[key] = strconv.Itoa(value)
}

func (p Params) setOptionalBool(key string, value bool) {
	if !value {
		return
	}
	p[key] = "true"
}

// formValues returns the wire form of the mapping with empty-valued
// keys omitted entirely.
func (p Params) formValues() url.Values {
	values := url.Values{}
	for key, value := range p {
		if len(value) == 0 {
			continue
		}
		values.Set(key, value)
	}
	return values
}
