package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"santabox/bot/features/boxes"
	"santabox/bot/features/join"
	"santabox/bot/features/manage"
	"santabox/bot/features/settings"
	"santabox/bot/flow"
	"santabox/domain/events"
	"santabox/domain/interfaces"
	"santabox/photostore"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token string
}

type Bot struct {
	config   Config
	session  *discordgo.Session
	eventBus *events.Bus
	flows    *flow.Store
	photos   *photostore.Store

	boxesFeature    *boxes.Feature
	joinFeature     *join.Feature
	manageFeature   *manage.Feature
	settingsFeature *settings.Feature
}

func New(config Config, uowFactory interfaces.UnitOfWorkFactory, eventBus *events.Bus, photos *photostore.Store) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	// DM content drives the flows, so the message content intent is required
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	flows := flow.NewStore()

	bot := &Bot{
		config:          config,
		session:         dg,
		eventBus:        eventBus,
		flows:           flows,
		photos:          photos,
		boxesFeature:    boxes.New(uowFactory, flows, photos),
		joinFeature:     join.New(uowFactory, flows, photos),
		manageFeature:   manage.New(uowFactory, flows),
		settingsFeature: settings.New(uowFactory),
	}

	dg.AddHandler(bot.handleInteraction)
	dg.AddHandler(bot.handleMessage)

	bot.subscribeNotifications(uowFactory)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Abandoned flows would otherwise pin their staged answers forever
	go bot.startFlowCleanup()

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleInteraction routes slash commands and component presses to features
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "start":
			b.settingsFeature.HandleStart(s, i)
		case "createbox":
			b.boxesFeature.HandleCommand(s, i)
		case "joinbox":
			b.joinFeature.HandleCommand(s, i)
		case "myboxes":
			b.settingsFeature.HandleMyBoxes(s, i)
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case customID == settings.ComponentCreateBox:
			b.boxesFeature.HandleCommand(s, i)
		case customID == settings.ComponentJoinBox:
			b.joinFeature.HandleCommand(s, i)
		case customID == settings.ComponentMyBoxes:
			b.settingsFeature.HandleMyBoxes(s, i)
		case manage.HandlesComponent(customID):
			b.manageFeature.HandleComponent(s, i)
		case join.HandlesComponent(customID):
			b.joinFeature.HandleComponent(s, i)
		}
	}
}

// handleMessage continues an active flow from a direct message. Everything
// conversational happens in DMs; guild messages are ignored.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID != "" {
		return
	}

	userID, err := parseUserID(m.Author.ID)
	if err != nil {
		log.WithError(err).WithField("authorID", m.Author.ID).Warn("Unparseable message author ID")
		return
	}

	state := b.flows.Get(userID)
	if state == nil {
		return
	}

	switch {
	case strings.HasPrefix(string(state.Step), "create_"):
		b.boxesFeature.HandleMessage(s, m, state)
	case strings.HasPrefix(string(state.Step), "join_"),
		strings.HasPrefix(string(state.Step), "edit_"):
		b.joinFeature.HandleMessage(s, m, state)
	case state.Step == flow.StepNotifyText:
		b.manageFeature.HandleMessage(s, m, state)
	}
}

// startFlowCleanup periodically drops flows nobody has touched for an hour
func (b *Bot) startFlowCleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if removed := b.flows.CleanupStale(time.Hour); removed > 0 {
			log.WithField("removed", removed).Info("Cleaned up stale flows")
		}
	}
}

func parseUserID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
