// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package utils

import (
	"cmp"
	"slices"
)

type HashSet[T comparable] struct {
	items map[T]struct{}
}

func NewHashSet[T comparable]() HashSet[T] {
	return HashSet[T]{
		items: make(map[T]struct{}),
	}
}

func (h *HashSet[T]) Add(v T) {
	if h.items == nil {
		h.items = make(map[T]struct{})
	}
	h.items[v] = struct{}{}
}

func (h *HashSet[T]) Remove(v T) {
	delete(h.items, v)
}

func (h *HashSet[T]) Contains(v T) bool {
	_, ok := h.items[v]
	return ok
}

func (h *HashSet[T]) Items() []T {
	items := make([]T, 0, len(h.items))
	for item := range h.items {
		items = append(items, item)
	}
	return items
}

func (h *HashSet[T]) Size() int {
	return len(h.items)
}

func (h *HashSet[T]) IsEmpty() bool {
	return len(h.items) == 0
}

func (h *HashSet[T]) Intersect(o HashSet[T]) HashSet[T] {
	result := NewHashSet[T]()
	for item := range h.items {
		if o.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

func (h *HashSet[T]) Union(o HashSet[T]) HashSet[T] {
	result := NewHashSet[T]()
	for item := range h.items {
		result.Add(item)
	}
	for item := range o.items {
		result.Add(item)
	}
	return result
}

func SliceToHashSet[T comparable](s []T) HashSet[T] {
	h := HashSet[T]{
		items: make(map[T]struct{}, len(s)),
	}

	for _, item := range s {
		h.Add(item)
	}

	return h
}

func SortedItems[T cmp.Ordered](h HashSet[T]) []T {
	items := h.Items()
	slices.Sort(items)
	return items
}
