package bustracker

import (
	"github.com/theoremus-urban-solutions/bus-tracker/internal"
)

func InitLogging() {
	internal.InitLogging()
}
