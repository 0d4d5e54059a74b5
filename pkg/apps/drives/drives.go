package drives

import (
	"bytes"
	"context"
	"fmt"
	"footballdrivebot/pkg/apps"
	"footballdrivebot/pkg/drive"
	"footballdrivebot/pkg/field"
	"footballdrivebot/pkg/games"
	"footballdrivebot/pkg/helper"
	"footballdrivebot/pkg/layout"
	"footballdrivebot/pkg/menus"
	"footballdrivebot/pkg/resources"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
)

const (
	commandDrive     = "/drive"
	commandPlay      = "/play"
	commandField     = "/field"
	commandSummary   = "/summary"
	commandFirstDown = "/firstdown"
	commandToGo      = "/togo"
	commandReset     = "/reset"
	commandNewGame   = "/newgame"
	commandExport    = "/export"
	commandWatch     = "/watch"
	commandUnwatch   = "/unwatch"

	buttonField   = "Field"
	buttonSummary = "Summary"

	symbolBall = "🏈"
)

// Watcher manages who is told about new drives.
type Watcher interface {
	Watch(gameId, chatId int64)
	Unwatch(gameId, chatId int64)
}

type DrivesApp struct {
	bot          apps.Sender
	games        *games.Manager
	store        *resources.Store
	watcher      Watcher
	domain       string
	appMenu      menus.ApplicationMenu
	menuKeyboard tgbotapi.ReplyKeyboardMarkup
}

func NewDrivesApp(bot apps.Sender, gm *games.Manager, store *resources.Store, watcher Watcher, domain string, appMenu menus.ApplicationMenu) *DrivesApp {
	menuKeyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonField),
			tgbotapi.NewKeyboardButton(buttonSummary),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(appMenu.ButtonBackTo()),
		),
	)

	return &DrivesApp{
		bot:          bot,
		games:        gm,
		store:        store,
		watcher:      watcher,
		domain:       strings.TrimSuffix(domain, "/"),
		appMenu:      appMenu,
		menuKeyboard: menuKeyboard,
	}
}

func (da *DrivesApp) AcceptCommand(command string) (bool, func(ctx context.Context, chatId int64) error) {
	name, args := apps.SplitCommand(command)
	switch name {
	case commandDrive:
		return true, da.startDrive(args)
	case commandPlay:
		return true, da.addPlay(args)
	case commandField:
		return true, da.renderField()
	case commandSummary:
		return true, da.renderSummary()
	case commandFirstDown:
		return true, da.firstDown(args)
	case commandToGo:
		return true, da.yardsToGo(args)
	case commandReset:
		return true, da.resetPointers()
	case commandNewGame:
		return true, da.newGame()
	case commandExport:
		return true, da.export()
	case commandWatch:
		return true, da.watch(args, true)
	case commandUnwatch:
		return true, da.watch(args, false)
	}
	return false, nil
}

func (da *DrivesApp) AcceptCallback(query *tgbotapi.CallbackQuery) (bool, func(ctx context.Context, query *tgbotapi.CallbackQuery) error) {
	return false, nil
}

func (da *DrivesApp) AcceptButton(button string) (bool, func(ctx context.Context, chatId int64) error) {
	switch button {
	case da.appMenu.Name:
		return true, func(ctx context.Context, chatId int64) error {
			return da.reply(chatId, fmt.Sprintf("%s %s\n\n%s", symbolBall, da.appMenu.Name, usage()), da.menuKeyboard)
		}
	case buttonField:
		return true, da.renderField()
	case buttonSummary:
		return true, da.renderSummary()
	case da.appMenu.ButtonBackTo():
		return true, func(ctx context.Context, chatId int64) error {
			return da.reply(chatId, "OK", da.appMenu.PrevMenu())
		}
	}
	return false, nil
}

func usage() string {
	lines := []string{
		fmt.Sprintf("%s <home|away> <yard> - start a drive", commandDrive),
		fmt.Sprintf("%s <home|away> <yards> - record a play", commandPlay),
		fmt.Sprintf("%s - draw the field", commandField),
		fmt.Sprintf("%s - list the drives", commandSummary),
		fmt.Sprintf("%s <yard>|off - first down marker", commandFirstDown),
		fmt.Sprintf("%s <home|away> - yards to go", commandToGo),
		fmt.Sprintf("%s - back to the start of the last drives", commandReset),
		fmt.Sprintf("%s - forget every drive", commandNewGame),
		fmt.Sprintf("%s - publish the field as svg and png", commandExport),
		fmt.Sprintf("%s [game] / %s [game] - drive notifications", commandWatch, commandUnwatch),
	}
	return strings.Join(lines, "\n")
}

func (da *DrivesApp) reply(chatId int64, text string, keyboard interface{}) error {
	msg := tgbotapi.NewMessage(chatId, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	_, err := da.bot.Send(msg)
	return err
}

// parseTeamAndNumber reads the "<team> <number>" arguments shared by
// /drive and /play.
func parseTeamAndNumber(args []string) (field.Team, float64, error) {
	if len(args) != 2 {
		return field.Home, 0, fmt.Errorf("expected <home|away> <number>")
	}
	team, err := field.ParseTeam(args[0])
	if err != nil {
		return field.Home, 0, err
	}
	n, err := helper.ParseYards(args[1])
	if err != nil {
		return field.Home, 0, err
	}
	return team, n, nil
}

func (da *DrivesApp) startDrive(args []string) func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		team, yard, err := parseTeamAndNumber(args)
		if err != nil {
			return da.reply(chatId, fmt.Sprintf("%s. Usage: %s <home|away> <yard>", err, commandDrive), nil)
		}
		if yard < 0 || yard > field.Yards {
			return da.reply(chatId, fmt.Sprintf("A drive starts between the 0 and the %.0f yard line", field.Yards), nil)
		}
		ds := da.games.Game(chatId).StartDrive(team, yard)
		return da.reply(chatId, ds.String(), nil)
	}
}

func (da *DrivesApp) addPlay(args []string) func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		team, yards, err := parseTeamAndNumber(args)
		if err != nil {
			return da.reply(chatId, fmt.Sprintf("%s. Usage: %s <home|away> <yards>", err, commandPlay), nil)
		}
		g := da.games.Game(chatId)
		if err := g.AddPlay(team, yards); err != nil {
			log.Printf("Play rejected in %d: %s", chatId, err)
			return da.reply(chatId, playError(err), nil)
		}
		yard := field.PixelToYard(g.CurrentPixel(team), team)
		message := fmt.Sprintf("%s %s yds, ball on the %s, %.0f to go",
			team, helper.FormatYards(yards), helper.FormatYardLine(team, yard), g.YardsToGo(team))
		switch g.YardsToGo(team) {
		case 0:
			message += "\nTouchdown! " + symbolBall
		case field.Yards:
			if yards < 0 {
				message += "\nSafety!"
			}
		}
		return da.reply(chatId, message, nil)
	}
}

func playError(err error) string {
	switch errors.Cause(err) {
	case drive.ErrNoActiveDrive:
		return fmt.Sprintf("There is no drive yet, start one with %s", commandDrive)
	case drive.ErrInvalidTeamForActiveDrive:
		return "That team does not have the ball on the current drive"
	}
	return err.Error()
}

func (da *DrivesApp) renderField() func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		g := da.games.Game(chatId)
		frame := g.UpdateField()
		data, err := layout.PNGBytes(frame.Primitives)
		if err != nil {
			return errors.Wrapf(err, "rendering field for %d", chatId)
		}
		photo := tgbotapi.NewPhoto(chatId, tgbotapi.FileBytes{Name: "field.png", Bytes: data})
		photo.Caption = fmt.Sprintf("Home %.0f to go · Away %.0f to go", g.YardsToGo(field.Home), g.YardsToGo(field.Away))
		_, err = da.bot.Send(photo)
		return err
	}
}

func (da *DrivesApp) renderSummary() func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		views := da.games.Game(chatId).Views()
		if len(views) == 0 {
			return da.reply(chatId, fmt.Sprintf("No drives yet. Start one with %s", commandDrive), nil)
		}
		msg := tgbotapi.NewMessage(chatId, fmt.Sprintf("```\n%s```", summaryTable(views)))
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		_, err := da.bot.Send(msg)
		return err
	}
}

func summaryTable(views []games.DriveView) string {
	var b bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&b)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Team", "Start", "End", "Net", "Plays"})
	for _, v := range views {
		t.AppendRow(table.Row{
			v.Number,
			v.Team,
			helper.FormatYardLine(v.Team, v.StartYard),
			helper.FormatYardLine(v.Team, v.EndYard),
			helper.FormatYards(v.NetYards),
			len(v.Plays),
		})
	}
	t.Render()
	return b.String()
}

func (da *DrivesApp) firstDown(args []string) func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		g := da.games.Game(chatId)
		if len(args) == 1 && strings.EqualFold(args[0], "off") {
			g.SetFirstDown(nil)
			return da.reply(chatId, "First down marker removed", nil)
		}
		if len(args) != 1 {
			return da.reply(chatId, fmt.Sprintf("Usage: %s <yard>|off", commandFirstDown), nil)
		}
		yard, err := helper.ParseYards(args[0])
		if err != nil {
			return da.reply(chatId, err.Error(), nil)
		}
		g.SetFirstDown(&yard)
		return da.reply(chatId, fmt.Sprintf("First down marker on the %s", helper.FormatYardLine(field.Home, yard)), nil)
	}
}

func (da *DrivesApp) yardsToGo(args []string) func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		g := da.games.Game(chatId)
		team := g.TeamWithBall()
		if len(args) > 0 {
			var err error
			team, err = field.ParseTeam(args[0])
			if err != nil {
				return da.reply(chatId, err.Error(), nil)
			}
		}
		return da.reply(chatId, fmt.Sprintf("%s: %.0f yards to go", team, g.YardsToGo(team)), nil)
	}
}

func (da *DrivesApp) resetPointers() func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		g := da.games.Game(chatId)
		g.ResetPointers()
		return da.reply(chatId, fmt.Sprintf("Back to the drive starts: Home %.0f to go, Away %.0f to go",
			g.YardsToGo(field.Home), g.YardsToGo(field.Away)), nil)
	}
}

func (da *DrivesApp) newGame() func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		da.games.Reset(chatId)
		return da.reply(chatId, "New game, the field is empty", nil)
	}
}

func (da *DrivesApp) export() func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		frame := da.games.Game(chatId).UpdateField()
		id := strconv.FormatInt(chatId, 10)
		svg, err := da.store.BuildFieldSVG(id, frame)
		if err != nil {
			return errors.Wrapf(err, "exporting field for %d", chatId)
		}
		png, err := da.store.BuildFieldPNG(id, frame)
		if err != nil {
			return errors.Wrapf(err, "exporting field for %d", chatId)
		}
		return da.reply(chatId, fmt.Sprintf("%s/resources/%s\n%s/resources/%s", da.domain, svg.FileName(), da.domain, png.FileName()), nil)
	}
}

func (da *DrivesApp) watch(args []string, enable bool) func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		gameId := chatId
		if len(args) > 0 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return da.reply(chatId, fmt.Sprintf("%q is not a game id", args[0]), nil)
			}
			gameId = id
		}
		if enable {
			da.watcher.Watch(gameId, chatId)
			return da.reply(chatId, fmt.Sprintf("You will be told about new drives in game %d", gameId), nil)
		}
		da.watcher.Unwatch(gameId, chatId)
		return da.reply(chatId, fmt.Sprintf("No more notifications for game %d", gameId), nil)
	}
}
