// Package model defines the domain entities and the command payloads
// that travel between the handler, service and repository layers.
//
// Entities (Todo, Label) are what the API returns. Commands (CreateTodo,
// UpdateTodo, CreateLabel) are what the API accepts; they carry validator
// tags and know how to validate themselves.
package model

import "github.com/go-playground/validator/v10"

// validate is shared by every payload in this package.
// validator caches struct metadata, so one instance is reused.
var validate = validator.New(validator.WithRequiredStructEnabled())

// DistinctIDs returns ids with duplicates removed, keeping the first
// occurrence of each id in its original position.
func DistinctIDs(ids []int32) []int32 {
	if len(ids) == 0 {
		return []int32{}
	}

	seen := make(map[int32]struct{}, len(ids))
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
