package bookconfigs

import (
	"github.com/litbook/litbook/cmds"
	"github.com/litbook/litbook/configs"
	"github.com/litbook/litbook/vars"
)

// RandomSeed seeds the rand builtins once per document, so repeated runs
// of the same document produce the same output.
type RandomSeed int64

var randomSeedFlag = cmds.Var[int64]("-random-seed")

func (Module) RandomSeed(
	loader configs.Loader,
) RandomSeed {
	return RandomSeed(vars.FirstNonZero(
		*randomSeedFlag,
		configs.First[int64](loader, "random_seed"),
		1234,
	))
}
