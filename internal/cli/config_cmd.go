package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/grodin/ktfmt/internal/config"
)

func (a *App) runConfig(args []string) error {
	if len(args) == 0 {
		return a.configShow()
	}
	if a.showTopicHelpIfRequested("config", args, 0) {
		return nil
	}

	sub := strings.ToLower(strings.TrimSpace(args[0]))
	switch sub {
	case "show":
		if a.showTopicHelpIfRequested("config", args, 1) {
			return nil
		}
		return a.configShow()
	case "path":
		if a.showTopicHelpIfRequested("config", args, 1) {
			return nil
		}
		fmt.Fprintln(a.stdout, a.cfgPath)
		return nil
	case "color":
		return a.configColor(args[1:])
	case "markdown":
		return a.configMarkdown(args[1:])
	default:
		return unknownSubcommand("config", sub)
	}
}

func (a *App) configShow() error {
	buf, err := os.ReadFile(a.cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(a.stdout, "color=%s\nmarkdown=%s\n", a.cfg.Color, onOff(a.cfg.RenderMarkdown))
			return nil
		}
		return err
	}
	if _, err := a.stdout.Write(buf); err != nil {
		return err
	}
	if len(buf) == 0 || buf[len(buf)-1] != '\n' {
		fmt.Fprintln(a.stdout)
	}
	return nil
}

func (a *App) configColor(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.stdout, "color=%s\n", a.cfg.Color)
		return nil
	}
	if a.showTopicHelpIfRequested("config", args, 0) {
		return nil
	}

	mode := strings.ToLower(strings.TrimSpace(args[0]))
	if !config.ValidColorMode(mode) {
		return usageErrorf("usage: ktfmt config color auto|always|never")
	}
	a.cfg.Color = mode
	if err := a.saveConfig(); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "color=%s\n", mode)
	return nil
}

func (a *App) configMarkdown(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.stdout, "markdown=%s\n", onOff(a.cfg.RenderMarkdown))
		return nil
	}
	if a.showTopicHelpIfRequested("config", args, 0) {
		return nil
	}

	sub := strings.ToLower(strings.TrimSpace(args[0]))
	switch sub {
	case "on", "enable":
		a.cfg.RenderMarkdown = true
	case "off", "disable":
		a.cfg.RenderMarkdown = false
	case "status":
		fmt.Fprintf(a.stdout, "markdown=%s\n", onOff(a.cfg.RenderMarkdown))
		return nil
	default:
		return unknownSubcommand("config markdown", sub)
	}
	if err := a.saveConfig(); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "markdown=%s\n", onOff(a.cfg.RenderMarkdown))
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
