/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/interncare/cmd"
	"github.com/josephgoksu/interncare/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
