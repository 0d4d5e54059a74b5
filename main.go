package main

import (
	"context"
	"footballdrivebot/pkg/apps/mainapp"
	"footballdrivebot/pkg/games"
	"footballdrivebot/pkg/notification"
	"footballdrivebot/pkg/pubsub"
	"footballdrivebot/pkg/resources"
	"footballdrivebot/pkg/settings"
	"footballdrivebot/pkg/webserver"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg, err := settings.FromEnv()
	if err != nil {
		log.Panic(err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		// Abort if something is wrong
		log.Panic(err)
	}

	// Set this to true to log all interactions with telegram servers
	bot.Debug = false

	store, err := resources.NewStore(cfg.ResourcesDir)
	if err != nil {
		log.Panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	driveEvents := pubsub.NewPubSub[games.DriveStarted]()
	gm := games.NewManager(cfg.TeamWithBall, cfg.Colors, driveEvents)

	exitChan := make(chan bool)
	nm := notification.NewManager(ctx, bot)
	go nm.Start(exitChan, driveEvents.Subscribe(games.PubSubDriveStartedPreffix))

	app := mainapp.NewMainApp(bot, gm, store, nm, cfg.WebserverDomain)

	wm := webserver.NewManager(cfg.WebserverAddress, store.Dir(), gm)
	if os.Getenv("WEBSERVER_DEBUG") != "" {
		wm.Debug()
	}
	serverDone := make(chan bool)
	go func() {
		wm.Serve(ctx)
		serverDone <- true
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	// `updates` is a golang channel which receives telegram updates
	updates := bot.GetUpdatesChan(u)

	go receiveUpdates(ctx, updates, app)

	log.Println("Start listening for updates. Press Ctrl-C to stop it")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	// lock the main thread until we receive a signal
	<-sigs

	bot.StopReceivingUpdates()
	cancel()
	driveEvents.Close()
	close(exitChan)
	<-serverDone
}

func receiveUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel, app *mainapp.MainApp) {
	for {
		select {
		// stop looping if ctx is cancelled
		case <-ctx.Done():
			return
		// receive update from channel and then handle it
		case update := <-updates:
			handleUpdate(ctx, update, app)
		}
	}
}

func handleUpdate(ctx context.Context, update tgbotapi.Update, app *mainapp.MainApp) {
	switch {
	// Handle messages
	case update.Message != nil:
		handleMessage(ctx, update.Message, app)
	// Handle button clicks
	case update.CallbackQuery != nil:
		accept, handler := app.AcceptCallback(update.CallbackQuery)
		if accept {
			if err := handler(ctx, update.CallbackQuery); err != nil {
				log.Printf("An error occured: %s", err.Error())
			}
		}
	}
}

func handleMessage(ctx context.Context, message *tgbotapi.Message, app *mainapp.MainApp) {
	user := message.From
	text := message.Text

	if user == nil {
		return
	}

	// Print to console
	log.Printf("%s wrote %s", user.FirstName, text)

	var err error
	if message.IsCommand() {
		accept, handler := app.AcceptCommand(text)
		if accept {
			err = handler(ctx, message.Chat.ID)
		}
	} else {
		accept, handler := app.AcceptButton(text)
		if accept {
			err = handler(ctx, message.Chat.ID)
		}
	}

	if err != nil {
		log.Printf("An error occured: %s", err.Error())
	}
}
