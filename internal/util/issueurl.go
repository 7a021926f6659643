// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"
	"net/url"
	"strings"
)

// Issue tracker coordinates for the "suggest a unit" link. The link is a
// pure redirect: nothing is transmitted by this program.
const (
	issueOwner = "LiborBenes-US"
	issueRepo  = "Units"
	issueTitle = "Unit suggestion:"
	issueBody  = "Please describe the unit you'd like added (name, exact definition/ratio to SI unit, and source/reference).\n\n" +
		"Example:\n- name: 'tablespoon_au'\n- definition: 20 mL\n- note: 'Australian tablespoon'"
)

// quote percent-encodes every reserved character, space included.
func quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// IssueURL returns the pre-templated new-issue URL for unit suggestions.
func IssueURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/issues/new?title=%s&body=%s",
		issueOwner, issueRepo, quote(issueTitle), quote(issueBody))
}
