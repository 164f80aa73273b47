// Copyright 2026 Phillip Cloud
// Licensed under the Apache License, Version 2.0

// Package demo generates throwaway pages for trying out the strip.
package demo

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/iancoleman/strcase"

	"github.com/cpcloud/pagestrip/internal/pages"
)

// Pages appends n fake pages to base. The same seed yields the same pages;
// seed 0 picks a random one. Generated ids never collide with ids in base.
func Pages(base []pages.Page, n int, seed uint64) []pages.Page {
	out := make([]pages.Page, len(base), len(base)+n)
	copy(out, base)
	taken := make(map[string]bool, len(base)+n)
	for _, p := range base {
		taken[p.ID] = true
	}
	faker := gofakeit.New(seed)
	for i := 0; len(out) < len(base)+n; i++ {
		name := strcase.ToCamel(faker.Noun())
		id := fmt.Sprintf("demo-%s", strcase.ToKebab(name))
		if taken[id] {
			id = fmt.Sprintf("%s-%d", id, i)
		}
		if taken[id] || name == "" {
			continue
		}
		taken[id] = true
		out = append(out, pages.Page{ID: id, Name: name})
	}
	return out
}
