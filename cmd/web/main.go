package main

import "github.com/LJMarquez/talentlink-backend/internal/app"

func main() {
	app.Run()
}
