// file: internals/features/surveys/service/shuffle.go
package service

import (
	"hash/fnv"
	"math/rand"

	"skillmatch_backend/internals/upstream"
)

// ShuffledOptions mengacak urutan opsi dengan seed dari hash konten
// pertanyaan: fungsi murni, urutan stabil selama konten tidak berubah,
// dan otomatis teracak ulang begitu admin mengedit pertanyaannya.
func ShuffledOptions(questionContent string, opts []upstream.Option) []upstream.Option {
	out := make([]upstream.Option, len(opts))
	copy(out, opts)

	h := fnv.New64a()
	_, _ = h.Write([]byte(questionContent))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
