package runners

import (
	"github.com/litbook/litbook/bookconfigs"
	"github.com/litbook/litbook/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	BookConfigs bookconfigs.Module
	Logs        logs.Module
}
