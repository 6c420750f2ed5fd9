// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)
var lowerCaser = cases.Lower(language.English)

// splitWords breaks a member or attribute name into its lowercase word parts,
// treating underscores, dashes and upper-case boundaries as separators.
func splitWords(s string) []string {
	words := make([]string, 0)
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, lowerCaser.String(current.String()))
			current.Reset()
		}
	}

	for _, char := range s {
		switch {
		case char == '_' || char == '-' || char == ' ':
			flush()
		case unicode.IsUpper(char):
			flush()
			current.WriteRune(char)
		default:
			current.WriteRune(char)
		}
	}
	flush()

	return words
}

func Underscore(s string) string {
	return strings.Join(splitWords(s), "_")
}

func Dasherize(s string) string {
	return strings.Join(splitWords(s), "-")
}

func Camelize(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var formated strings.Builder
	formated.WriteString(words[0])
	for _, word := range words[1:] {
		formated.WriteString(titleCaser.String(word))
	}

	return formated.String()
}

// ExportedName converts a member or model-field name into the exported Go
// struct field it maps to ("created_at" -> "CreatedAt", "id" -> "ID").
func ExportedName(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var formated strings.Builder
	for _, word := range words {
		if word == "id" || word == "url" || word == "api" {
			formated.WriteString(strings.ToUpper(word))
			continue
		}
		formated.WriteString(titleCaser.String(word))
	}

	return formated.String()
}
