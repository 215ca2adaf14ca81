package graphql

// filter is a FiltersInput object, e.g. {"lastName": {"containsi": "de"}}.
type filter map[string]any

// containsi matches a case-insensitive substring. An empty needle means no
// filter, which returns the full set.
func containsi(field, needle string) filter {
	if needle == "" {
		return nil
	}
	return filter{field: map[string]any{"containsi": needle}}
}

// relationEq matches records whose relation points at id.
func relationEq(relation, id string) filter {
	return filter{relation: map[string]any{"id": map[string]any{"eq": id}}}
}

// relationNull matches records without the relation.
func relationNull(relation string) filter {
	return filter{relation: map[string]any{"id": map[string]any{"null": true}}}
}

// through nests a filter under a relation: through("tasks", relationEq("freelancer", "7"))
// matches records having a task whose freelancer is 7.
func through(relation string, inner filter) filter {
	if len(inner) == 0 {
		return nil
	}
	return filter{relation: map[string]any(inner)}
}

// and merges filters; the API treats sibling keys as a conjunction.
func and(filters ...filter) filter {
	var out filter
	for _, f := range filters {
		for k, v := range f {
			if out == nil {
				out = filter{}
			}
			out[k] = v
		}
	}
	return out
}
