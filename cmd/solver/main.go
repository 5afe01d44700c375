package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lsafer/sudoku-server/internal/sudoku"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	grid := sudoku.Sample()

	fmt.Println("The original grid:")
	fmt.Println(grid)

	n := 0
	err := sudoku.Solve(context.Background(), &grid, func(s sudoku.Grid) bool {
		n++
		fmt.Println()
		fmt.Printf("Solution number %d :\n", n)
		fmt.Println(s)
		return true
	})
	if err != nil {
		log.Fatal("unable to solve the sample grid: ", err)
	}

	log.Debugf("enumeration finished, %d solution(s)", n)
}
