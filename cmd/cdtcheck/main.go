package main

import "github.com/le1239-ch/aliyunCDTtrafficCheck/internal/cli"

func main() {
	cli.Execute()
}
