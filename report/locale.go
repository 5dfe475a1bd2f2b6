// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats statistics for people: locale-aware numbers,
// text tables, and user-facing messages.
package report // import "github.com/aclements/go-descstat/report"

import (
	"strings"

	"github.com/pkg/errors"
)

// A Locale selects the language of messages and the number format.
type Locale string

const (
	// English uses a decimal point and comma thousands separators.
	English Locale = "en"

	// Portuguese (Brazil) uses a decimal comma and point thousands
	// separators.
	Portuguese Locale = "pt-BR"
)

// ErrUnknownLocale is returned by ParseLocale for unsupported locales.
var ErrUnknownLocale = errors.New("unknown locale")

// ParseLocale returns the Locale named by s. It accepts language tags
// such as "en-US", "pt", and "pt_BR" in any case.
func ParseLocale(s string) (Locale, error) {
	tag := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	lang := tag
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		lang = tag[:i]
	}
	switch lang {
	case "en":
		return English, nil
	case "pt":
		return Portuguese, nil
	}
	return "", errors.Wrapf(ErrUnknownLocale, "%q", s)
}

// A phrase is a piece of user-facing text in every supported locale.
type phrase struct {
	en, pt string
}

func (l Locale) say(p phrase) string {
	if l == Portuguese {
		return p.pt
	}
	return p.en
}
