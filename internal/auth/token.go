// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"net/url"
	"strings"

	apperrors "restaurantai/cli/internal/errors"
)

// TokenParam is the query parameter the backend appends to the dashboard redirect.
const TokenParam = "access_token"

// ExtractToken pulls the access token out of what the user pasted after signing in.
// It accepts the full redirect URL (token in the query or the fragment), a bare
// "access_token=..." pair, or the token itself.
func ExtractToken(input string) (string, error) {
	input = strings.TrimSpace(input)
	input = strings.Trim(input, `"'`)
	if input == "" {
		return "", apperrors.New(apperrors.Validation, "nothing was pasted")
	}

	if strings.Contains(input, "://") || strings.HasPrefix(input, "/") {
		u, err := url.Parse(input)
		if err != nil {
			return "", apperrors.Wrap(apperrors.Validation, "pasted URL is not valid", err)
		}
		if tok := u.Query().Get(TokenParam); tok != "" {
			return tok, nil
		}
		if frag, err := url.ParseQuery(u.Fragment); err == nil {
			if tok := frag.Get(TokenParam); tok != "" {
				return tok, nil
			}
		}
		return "", apperrors.New(apperrors.Validation, "pasted URL has no "+TokenParam+" parameter")
	}

	if strings.ContainsAny(input, "=&?#") {
		q, err := url.ParseQuery(strings.TrimLeft(input, "?#"))
		if err != nil || q.Get(TokenParam) == "" {
			return "", apperrors.New(apperrors.Validation, "could not find "+TokenParam+" in the pasted text")
		}
		return q.Get(TokenParam), nil
	}

	if strings.ContainsAny(input, " \t\r\n") {
		return "", apperrors.New(apperrors.Validation, "a token cannot contain spaces")
	}
	return input, nil
}
