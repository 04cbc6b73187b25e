package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"arthurflix/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels_DereferencesEveryModel(t *testing.T) {
	got := models()

	require.Len(t, got, len(model.All()))
	for _, m := range got {
		assert.Equal(t, reflect.Struct, reflect.TypeOf(m).Kind())
	}
}

func TestGenerator_WritesTokenAndMembershipQueries(t *testing.T) {
	out := filepath.Join(t.TempDir(), "query")

	newGenerator(out).Execute()

	for _, name := range []string{"gen.go", "direct_download_tokens.gen.go", "download_tokens.gen.go", "membership_keys.gen.go"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
}
