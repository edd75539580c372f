// Terminal viewer for the admin consultation list.
// cmd/consultation-watch/main.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"howdohome-api/config"
	"howdohome-api/models"
	"howdohome-api/services"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	svc := services.NewConsultationService(config.DB)
	view := services.NewListView(svc.List, services.DefaultPageSize, services.DefaultSearchDelay, printPage)
	defer view.Close()

	fmt.Println("commands: search <term> | status <status> | type <type> | page <n> | refresh | quit")
	view.Refresh()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "search":
			view.SetSearch(arg)
		case "status":
			if arg != "" && !models.IsValidConsultationStatus(arg) {
				fmt.Printf("unknown status %q (valid: %s)\n", arg, strings.Join(models.ConsultationStatuses, ", "))
				continue
			}
			view.SetStatus(arg)
		case "type":
			view.SetProjectType(arg)
		case "page":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("page takes a number")
				continue
			}
			view.SetPage(n)
		case "refresh":
			view.Refresh()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func printPage(page *services.ConsultationPage) {
	fmt.Printf("-- page %d/%d (%d total) --\n", page.Page, page.TotalPages, page.TotalCount)
	for _, row := range page.Rows {
		memo := ""
		if row.AdminMemo != nil && *row.AdminMemo != "" {
			memo = " 메모: " + *row.AdminMemo
		}
		fmt.Printf("%s  [%s]  %s  %s%s\n",
			row.CreatedAt.Format("2006-01-02 15:04"), row.Status, row.Name, row.Phone, memo)
	}
	if len(page.Rows) == 0 {
		fmt.Println("(no consultations)")
	}
}
