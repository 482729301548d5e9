package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/marinescroller/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision records and physics shapes")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	tracePath := flag.String("trace", "", "write per-tick collision records to this CSV file")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.ScreenWidth*2, common.ScreenHeight*2)
	ebiten.SetWindowTitle("marinescroller")

	game, err := NewGame(*levelName, *debug, *tracePath)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
