package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shpitdev/sorting-tool/pkg/pipeline/datatype"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/io/local"
	"github.com/shpitdev/sorting-tool/pkg/pipeline/mergesort"
	"github.com/shpitdev/sorting-tool/test/template/casefold"
)

func main() {
	dt := casefold.Word{}
	words, err := datatype.ReadAll[string](context.Background(), local.NewCursor(os.Stdin), dt, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(strings.Join(mergesort.Sort(words, dt.ChooseLeft), dt.Separator()))
}
