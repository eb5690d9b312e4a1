package gen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/scaffold/compiler/gen"
)

func BenchmarkEngine_Generate(b *testing.B) {
	cfg, err := gen.NewConfig(gen.WithRoot(b.TempDir()), gen.WithDryRun(true))
	require.NoError(b, err)
	engine, err := gen.NewEngine(cfg)
	require.NoError(b, err)
	req := gen.Request{
		Name:   "BlogPost",
		Schema: "title:string, slug:string:unique, body:text:nullable, price:decimal, published:boolean, meta:json, user_id:foreignId",
		Kinds:  gen.AllKinds(),
		Options: gen.Options{
			Force:      true,
			Collection: true,
		},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := engine.Generate(context.Background(), req)
		require.NoError(b, err)
	}
}
