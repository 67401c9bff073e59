package tgbot

import (
	"log/slog"

	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/internal/model/tg/tgCallback"
	"github.com/isbleu/concept/internal/transport/telegram"
	customMW "github.com/isbleu/concept/internal/transport/telegram/middleware"
	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

type TGBot struct {
	bot  *tele.Bot
	ctrl *telegram.Controller
}

func New(cfg *config.Config, ctrl *telegram.Controller) *TGBot {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Telegram.UpdTimeout},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		panic(err)
	}

	return &TGBot{bot: b, ctrl: ctrl}
}

func (b *TGBot) Start() {
	b.bot.Use(middleware.Recover(), customMW.Logger())

	b.setupRoutes()

	go b.bot.Start()
	slog.Info("tgbot started!")
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

func (b *TGBot) setupRoutes() {
	b.bot.Handle("/start", b.ctrl.Start)
	b.bot.Handle("/concepts", b.ctrl.Concepts)
	b.bot.Handle("/quotes", b.ctrl.Quotes)
	b.bot.Handle("/trash", b.ctrl.Trash)

	b.bot.Handle(&tele.Btn{Unique: tgCallback.ConceptQuotes}, b.ctrl.ConceptQuotesCallback)
	b.bot.Handle(&tele.Btn{Unique: tgCallback.RefreshQuotes}, b.ctrl.ConceptQuotesCallback)
	b.bot.Handle(&tele.Btn{Unique: tgCallback.BackToConcepts}, b.ctrl.BackToConceptsCallback)
}
