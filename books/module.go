package books

import (
	"github.com/litbook/litbook/runners"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Runners runners.Module
}
