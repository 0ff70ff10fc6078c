package service

import "strings"

func renderTemplate(template, channel, topic string) string {
	return strings.NewReplacer("{channel}", channel, "{topic}", topic).Replace(template)
}
