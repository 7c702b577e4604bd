package bookconfigs

import (
	"github.com/litbook/litbook/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
