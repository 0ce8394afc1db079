package corpus

import (
	"context"

	"github.com/jimiaki7/gegraptai/pkg/ref"
)

// Lookup resolves a compound reference and fetches verses for each of
// its references. A nil parser means ref.Default().
//
// Input without any reference gives InvalidPassageError. Input whose
// references are all absent from the store gives PassageNotFoundError.
// Otherwise every reference yields a passage, empty ones included.
func Lookup(
	ctx context.Context,
	store Store,
	p *ref.Parser,
	input string,
) ([]Passage, error) {
	if p == nil {
		p = ref.Default()
	}

	refs := p.ParseCompound(input)
	if len(refs) == 0 {
		return nil, InvalidPassageError(input)
	}

	res := make([]Passage, 0, len(refs))
	var found bool
	for _, r := range refs {
		verses, err := store.Verses(ctx, r)
		if err != nil {
			return nil, err
		}
		if len(verses) > 0 {
			found = true
		}
		res = append(res, Passage{Reference: r, Verses: verses})
	}

	if !found {
		return nil, PassageNotFoundError(input)
	}
	return res, nil
}
