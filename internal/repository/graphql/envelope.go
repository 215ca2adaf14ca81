package graphql

// The API wraps every record as {data: {id, attributes: {...}}} and every
// relation as {data: [...]} or {data: {...} | null}.

type entity[T any] struct {
	ID         string `json:"id"`
	Attributes T      `json:"attributes"`
}

type single[T any] struct {
	Data *entity[T] `json:"data"`
}

type collection[T any] struct {
	Data []entity[T] `json:"data"`
}

type ref struct {
	ID string `json:"id"`
}

type relationMany struct {
	Data []ref `json:"data"`
}

func (r relationMany) ids() []string {
	ids := make([]string, 0, len(r.Data))
	for _, d := range r.Data {
		ids = append(ids, d.ID)
	}
	return ids
}

// mutationResult is the payload of create/update/delete mutations.
type mutationResult struct {
	Data *ref `json:"data"`
}
