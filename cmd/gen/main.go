// Command gen writes typed gorm query helpers for every persisted model.
package main

import (
	"flag"
	"reflect"

	"arthurflix/internal/infra/persistence/model"

	"gorm.io/gen"
)

const defaultOutPath = "./internal/infra/persistence/postgres/query"

func main() {
	out := flag.String("out", defaultOutPath, "output directory for the query package")
	flag.Parse()

	newGenerator(*out).Execute()
}

func newGenerator(outPath string) *gen.Generator {
	g := gen.NewGenerator(gen.Config{
		OutPath:       outPath,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})
	g.ApplyBasic(models()...)

	return g
}

// models dereferences model.All so the generator sees the struct types.
func models() []any {
	all := model.All()
	out := make([]any, 0, len(all))
	for _, m := range all {
		out = append(out, reflect.Indirect(reflect.ValueOf(m)).Interface())
	}

	return out
}
