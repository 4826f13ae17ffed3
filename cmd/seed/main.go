package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/meusistema/clientes/internal/app"
	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/pkg/dbctx"
	"github.com/meusistema/clientes/internal/pkg/optional"
)

func main() {
	var alunos, metas int
	var dryRun bool
	flag.IntVar(&alunos, "alunos", 10, "number of demo alunos to insert")
	flag.IntVar(&metas, "metas", 5, "number of demo metas to insert")
	flag.BoolVar(&dryRun, "dry-run", false, "print planned rows without inserting")
	flag.Parse()

	if dryRun {
		for _, a := range demoAlunos(alunos) {
			fmt.Printf("[dry-run] aluno nome=%q matricula=%s\n", a.Nome, *a.Matricula)
		}
		for _, m := range demoMetas(metas) {
			fmt.Printf("[dry-run] meta area=%q valor=%.2f\n", *m.Area, *m.Valor)
		}
		return
	}

	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	dbc := dbctx.Context{Ctx: ctx}
	inserted := 0
	for _, a := range demoAlunos(alunos) {
		saved, err := application.Services.Aluno.Save(dbc, a)
		if err != nil {
			fmt.Printf("insert aluno %q: %v\n", a.Nome, err)
			application.Close()
			os.Exit(1)
		}
		inserted++
		fmt.Printf("inserted aluno id=%d\n", saved.ID)
	}
	for _, m := range demoMetas(metas) {
		saved, err := application.Services.Meta.Save(dbc, m)
		if err != nil {
			fmt.Printf("insert meta %q: %v\n", *m.Area, err)
			application.Close()
			os.Exit(1)
		}
		inserted++
		fmt.Printf("inserted meta id=%d\n", saved.ID)
	}
	fmt.Printf("done; inserted=%d\n", inserted)
}

func demoAlunos(n int) []*types.Aluno {
	out := make([]*types.Aluno, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &types.Aluno{
			Nome:      fmt.Sprintf("Aluno %03d", i),
			Email:     optional.Ptr(fmt.Sprintf("aluno%03d@example.com", i)),
			Matricula: optional.Ptr(fmt.Sprintf("M-%05d", i)),
		})
	}
	return out
}

var areas = []string{"vendas", "ops", "marketing", "financeiro"}

func demoMetas(n int) []*types.Meta {
	out := make([]*types.Meta, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &types.Meta{
			Valor: optional.Ptr(float64(i) * 1000),
			Area:  optional.Ptr(areas[(i-1)%len(areas)]),
		})
	}
	return out
}
