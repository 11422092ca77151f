// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a selector string into a query. A selector is a sequence of
// steps separated by periods, each of which is one of:
//
//	name    the value of the map member with key name
//	N       the list element at offset N; negative offsets count from the end
//	#       the length of the current value (see Len)
//	*       the remaining steps applied to each child (see Each)
//	**      the remaining steps applied to every descendant (see Recur)
//
// A name that begins with a backslash is taken literally with the backslash
// removed, so `\*` selects the key "*" and `\12` selects the key "12".
// Otherwise a step that begins with a digit or sign must be an integer.
// The empty selector selects the root.
func Parse(s string) (Query, error) {
	if s == "" {
		return Seq{}, nil
	}
	return parseSteps(strings.Split(s, "."))
}

func parseSteps(steps []string) (Query, error) {
	var out Seq
	for i, step := range steps {
		switch {
		case step == "":
			return nil, errors.New("empty selector step")
		case step == "*" || step == "**":
			rest, err := parseSteps(steps[i+1:])
			if err != nil {
				return nil, err
			}
			if step == "*" {
				return append(out, Each(rest)), nil
			}
			return append(out, Recur(rest)), nil
		case step == "#":
			out = append(out, Len())
		case step[0] == '\\':
			out = append(out, mapKey(step[1:]))
		default:
			if n, err := strconv.Atoi(step); err == nil {
				out = append(out, nthQuery(n))
			} else if strings.ContainsAny(step[:1], "+-0123456789") {
				return nil, fmt.Errorf("invalid index %q", step)
			} else {
				out = append(out, mapKey(step))
			}
		}
	}
	return out, nil
}
