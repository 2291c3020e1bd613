package main

import (
	formatter "github.com/bluexlab/logrus-formatter"

	"github.com/agenttrust/agenttrust/pkg/trust_server/cli"
)

func main() {
	formatter.InitLogger()
	cli := cli.App{}
	cli.Run()
}
