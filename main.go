package main

import (
	"github.com/matteomarino16/telegram-audio-bot/cmd"
)

func main() {
	cmd.Execute()
}
