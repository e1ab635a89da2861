package main

import (
	"bufio"
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"

	"github.com/EshRan/pooja-admin-ui/auth"
	"github.com/EshRan/pooja-admin-ui/client"
	"github.com/EshRan/pooja-admin-ui/config"
	"github.com/EshRan/pooja-admin-ui/controllers"
	"github.com/EshRan/pooja-admin-ui/cronJobs"
	"github.com/EshRan/pooja-admin-ui/forms"
	"github.com/EshRan/pooja-admin-ui/models"
	"github.com/EshRan/pooja-admin-ui/storage"
	"github.com/EshRan/pooja-admin-ui/utils"
)

func InitiateCronJobs(spec string) error {
	logrus.Infof("initiating background refresh job")
	refreshLists := cron.New()
	err := refreshLists.AddFunc(spec, func() {
		cronJobs.RefreshAll()
	})
	if err != nil {
		logrus.Errorf("background refresh job initiation failed %v", err)
		return err
	}
	refreshLists.Start()
	logrus.Infof("background refresh job initiation successful")
	return nil
}

// page is one entity table the console can switch to.
type page struct {
	refresh func(ctx context.Context)
	rows    func(query string) []string
	remove  func(ctx context.Context, id int) error
	add     func(ctx context.Context)
	edit    func(ctx context.Context, id int)
}

// promptFields walks the schema and lets the user overwrite the session
// buffer field by field; an empty answer keeps the pre-populated value.
func promptFields(stdin *bufio.Scanner, schema forms.Schema, session *controllers.EditSession) {
	for _, field := range schema.Fields {
		fmt.Printf("%s [%s]: ", field.Label, session.Field(field.Name))
		if !stdin.Scan() {
			return
		}
		if input := strings.TrimSpace(stdin.Text()); input != "" {
			session.SetField(field.Name, input)
		}
	}
	if schema.HasAttachment {
		fmt.Print("image file path (blank to keep current image): ")
		if !stdin.Scan() {
			return
		}
		path := strings.TrimSpace(stdin.Text())
		if path == "" {
			return
		}
		raw, err := ioutil.ReadFile(path)
		if err != nil {
			fmt.Println("could not read image file, continuing without it")
			logrus.Errorf("failed to read staged image %s: %+v", path, err)
			return
		}
		session.StageAttachment(&client.Attachment{FileName: filepath.Base(path), Data: raw})
	}
}

func reportSubmit(err error) {
	if err == nil {
		fmt.Println("saved")
		return
	}
	var errs forms.ValidationErrors
	if errors.As(err, &errs) {
		for field, message := range errs {
			fmt.Printf("  %s: %s\n", field, message)
		}
		return
	}
	fmt.Println("save failed, see log for details")
}

func addFlow[T any](stdin *bufio.Scanner, ctrl *controllers.ListController[T], schema forms.Schema) func(ctx context.Context) {
	return func(ctx context.Context) {
		ctrl.OpenForCreate()
		promptFields(stdin, schema, ctrl.Session())
		reportSubmit(ctrl.Submit(ctx))
	}
}

func editFlow[T any](stdin *bufio.Scanner, ctrl *controllers.ListController[T], schema forms.Schema, recordValues func(T) (int, map[string]string)) func(ctx context.Context, id int) {
	return func(ctx context.Context, id int) {
		for _, record := range ctrl.Items() {
			recordID, values := recordValues(record)
			if recordID != id {
				continue
			}
			ctrl.OpenForEdit(id, values)
			promptFields(stdin, schema, ctrl.Session())
			reportSubmit(ctrl.Submit(ctx))
			return
		}
		fmt.Println("no such record in the current list")
	}
}

func promptInt(stdin *bufio.Scanner, label string) int {
	fmt.Printf("%s: ", label)
	if !stdin.Scan() {
		return 0
	}
	value, err := utils.StringToInt(strings.TrimSpace(stdin.Text()))
	if err != nil {
		return 0
	}
	return value
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Panicf("Failed to load configuration with error: %+v", err)
	}

	gate := auth.NewGate(
		auth.NewFileStore(cfg.TokenPath),
		auth.Credentials{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash},
		[]byte(cfg.JWTSecret),
	)
	api := client.New(client.Config{BaseURL: cfg.BackendBaseURL, Tokens: gate})

	stdin := bufio.NewScanner(os.Stdin)
	confirm := func(prompt string) bool {
		fmt.Printf("%s [y/N] ", prompt)
		if !stdin.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(stdin.Text()))
		return answer == "y" || answer == "yes"
	}
	alert := func(message string) {
		fmt.Println("! " + message)
	}

	items := controllers.NewListController(client.Items(api), forms.Item(), func(item models.PoojaItem) []string {
		return []string{item.ItemName, item.ItemCode.String}
	}, confirm, alert)
	nuts := controllers.NewListController(client.Nuts(api), forms.Nut(), func(nut models.Nut) []string {
		return []string{nut.ItemName, nut.ItemCode.String}
	}, confirm, alert)
	occasions := controllers.NewListController(client.Occasions(api), forms.Occasion(), func(occasion models.Occasion) []string {
		return []string{occasion.OccasionName, occasion.OccasionCode.String}
	}, confirm, alert)
	banners := controllers.NewListController(client.Banners(api), forms.Banner(), func(banner models.Banner) []string {
		return []string{banner.BannerName, banner.BannerType.String}
	}, confirm, alert)
	mappings := controllers.NewMappingController(client.Mappings(api), client.Items(api), client.Occasions(api), confirm, alert)

	cronJobs.Register(items)
	cronJobs.Register(nuts)
	cronJobs.Register(occasions)
	cronJobs.Register(banners)
	cronJobs.Register(mappings)
	if err := InitiateCronJobs(cfg.RefreshSpec); err != nil {
		logrus.Error("error from background refresh job", err)
	}

	pages := map[string]*page{
		"items": {
			refresh: items.Refresh,
			remove:  items.Remove,
			add:     addFlow(stdin, items, forms.Item()),
			edit: editFlow(stdin, items, forms.Item(), func(item models.PoojaItem) (int, map[string]string) {
				return item.ID.Int, forms.ItemValues(item)
			}),
			rows: func(query string) []string {
				rows := make([]string, 0)
				for _, item := range items.Filter(query) {
					rows = append(rows, fmt.Sprintf("%4d  %-30s  %-10s  ₹%-8.2f  in stock: %t",
						item.ID.Int, item.ItemName, item.ItemCode.String, item.Price.Float32, item.IsInStock.Bool))
				}
				return rows
			},
		},
		"nuts": {
			refresh: nuts.Refresh,
			remove:  nuts.Remove,
			add:     addFlow(stdin, nuts, forms.Nut()),
			edit: editFlow(stdin, nuts, forms.Nut(), func(nut models.Nut) (int, map[string]string) {
				return nut.ID.Int, forms.NutValues(nut)
			}),
			rows: func(query string) []string {
				rows := make([]string, 0)
				for _, nut := range nuts.Filter(query) {
					rows = append(rows, fmt.Sprintf("%4d  %-30s  ₹%-8.2f  image: %s",
						nut.ID.Int, nut.ItemName, nut.Price.Float32,
						storage.ImageName(nut.S3ImageKey.String)))
				}
				return rows
			},
		},
		"occasions": {
			refresh: occasions.Refresh,
			remove:  occasions.Remove,
			add:     addFlow(stdin, occasions, forms.Occasion()),
			edit: editFlow(stdin, occasions, forms.Occasion(), func(occasion models.Occasion) (int, map[string]string) {
				return occasion.ID.Int, forms.OccasionValues(occasion)
			}),
			rows: func(query string) []string {
				rows := make([]string, 0)
				for _, occasion := range occasions.Filter(query) {
					rows = append(rows, fmt.Sprintf("%4d  %-30s  %-10s  active: %t  %s",
						occasion.ID.Int, occasion.OccasionName, occasion.Category.String, occasion.IsActive.Bool,
						storage.ResolveImageURL(cfg.StorageBaseURL, occasion.S3ImageKey.String)))
				}
				return rows
			},
		},
		"banners": {
			refresh: banners.Refresh,
			remove:  banners.Remove,
			add:     addFlow(stdin, banners, forms.Banner()),
			edit: editFlow(stdin, banners, forms.Banner(), func(banner models.Banner) (int, map[string]string) {
				return banner.ID.Int, forms.BannerValues(banner)
			}),
			rows: func(query string) []string {
				rows := make([]string, 0)
				for _, banner := range banners.Filter(query) {
					rows = append(rows, fmt.Sprintf("%4d  %-30s  %-12s  %s",
						banner.ID.Int, banner.BannerName, banner.BannerType.String,
						storage.ResolveImageURL(cfg.StorageBaseURL, banner.S3ImageKey.String)))
				}
				return rows
			},
		},
		"mappings": {
			refresh: mappings.Refresh,
			remove:  mappings.Remove,
			add: func(ctx context.Context) {
				itemID := promptInt(stdin, "item id")
				occasionID := promptInt(stdin, "occasion id")
				fmt.Print("notes: ")
				notes := ""
				if stdin.Scan() {
					notes = strings.TrimSpace(stdin.Text())
				}
				reportSubmit(mappings.Submit(ctx, itemID, occasionID, notes))
			},
			edit: func(ctx context.Context, id int) {
				fmt.Println("mappings cannot be edited; delete and re-create instead")
			},
			rows: func(query string) []string {
				rows := make([]string, 0)
				for _, mapping := range mappings.Filter(query) {
					rows = append(rows, fmt.Sprintf("%4d  %-30s -> %-30s  %s",
						mapping.ID.Int, mappings.ItemLabel(mapping), mappings.OccasionLabel(mapping), mapping.Notes.String))
				}
				return rows
			},
		},
	}

	ctx := context.Background()

	for !gate.Authenticated() {
		fmt.Print("username: ")
		if !stdin.Scan() {
			return
		}
		username := strings.TrimSpace(stdin.Text())
		fmt.Print("password: ")
		if !stdin.Scan() {
			return
		}
		if err := gate.Login(username, strings.TrimSpace(stdin.Text())); err != nil {
			fmt.Println("Invalid username or password")
			continue
		}
		fmt.Println("signed in")
	}

	current := "items"
	pages[current].refresh(ctx)
	fmt.Println("pooja admin console — commands: use <page> | list | search <q> | add | edit <id> | rm <id> | refresh | logout | quit")

	for {
		fmt.Printf("%s> ", current)
		if !stdin.Scan() {
			return
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}
		command := strings.SplitN(line, " ", 2)
		arg := ""
		if len(command) > 1 {
			arg = strings.TrimSpace(command[1])
		}

		switch command[0] {
		case "use":
			if _, ok := pages[arg]; !ok {
				fmt.Println("no such page, pick one of: items, nuts, occasions, banners, mappings")
				continue
			}
			current = arg
			pages[current].refresh(ctx)
		case "list":
			printRows(pages[current].rows(""))
		case "search":
			printRows(pages[current].rows(arg))
		case "add":
			pages[current].add(ctx)
		case "edit":
			id, err := utils.StringToInt(arg)
			if err != nil {
				fmt.Println("edit needs a numeric id")
				continue
			}
			pages[current].edit(ctx, id)
		case "rm":
			id, err := utils.StringToInt(arg)
			if err != nil {
				fmt.Println("rm needs a numeric id")
				continue
			}
			if err := pages[current].remove(ctx, id); err != nil {
				fmt.Println("delete failed, see log for details")
			}
		case "refresh":
			pages[current].refresh(ctx)
		case "logout":
			if err := gate.Logout(); err != nil {
				logrus.Errorf("failed to clear session: %+v", err)
			}
			return
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command")
		}
	}
}

func printRows(rows []string) {
	if len(rows) == 0 {
		fmt.Println("(no records)")
		return
	}
	for _, row := range rows {
		fmt.Println(row)
	}
}
