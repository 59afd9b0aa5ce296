package dbl

import "fmt"

// Widget URL builders. These are pure string builders: no network I/O, and no
// validation of the color values. A malformed hex string produces a malformed
// URL, which the image server will reject, not this client. Do not prefix
// colors with '#'.
//
// When botID is empty the builders use the host identifier if it has already
// been resolved; before the host is ready they produce a URL with an empty id
// segment. Pass an explicit id or wait on the host's Ready signal first.

// LargeWidgetOptions are the colors of the large widget. Zero-value fields take
// the service's default styling.
type LargeWidgetOptions struct {
	TopColor       string
	MiddleColor    string
	UsernameColor  string
	CertifiedColor string
	DataColor      string
	LabelColor     string
	HighlightColor string
}

// SmallWidgetOptions are the colors of the small widget. Zero-value fields take
// the service's default styling.
type SmallWidgetOptions struct {
	AvatarBackground string
	LeftColor        string
	RightColor       string
	LeftTextColor    string
	RightTextColor   string
}

// GenerateWidgetLarge builds the image URL of a customized large widget.
func (c *Client) GenerateWidgetLarge(botID string, o LargeWidgetOptions) string {
	if botID == "" {
		botID = c.resolvedID()
	}
	return fmt.Sprintf(
		"%s/widget/%s.png?topcolor=%s&middlecolor=%s&usernamecolor=%s&certifiedcolor=%s&datacolor=%s&labelcolor=%s&highlightcolor=%s",
		c.api.baseURL, botID,
		orDefault(o.TopColor, "2C2F33"),
		orDefault(o.MiddleColor, "23272A"),
		orDefault(o.UsernameColor, "FFFFFF"),
		orDefault(o.CertifiedColor, "FFFFFF"),
		orDefault(o.DataColor, "FFFFFF"),
		orDefault(o.LabelColor, "99AAB5"),
		orDefault(o.HighlightColor, "2C2F33"),
	)
}

// WidgetLargeURL builds the image URL of the default-styled large widget.
func (c *Client) WidgetLargeURL(botID string) string {
	if botID == "" {
		botID = c.resolvedID()
	}
	return fmt.Sprintf("%s/widget/%s.png", c.api.baseURL, botID)
}

// GenerateWidgetSmall builds the image URL of a customized small widget.
func (c *Client) GenerateWidgetSmall(botID string, o SmallWidgetOptions) string {
	if botID == "" {
		botID = c.resolvedID()
	}
	return fmt.Sprintf(
		"%s/widget/lib/%s.png?avatarbg=%s&lefttextcolor=%s&righttextcolor=%s&leftcolor=%s&rightcolor=%s",
		c.api.baseURL, botID,
		orDefault(o.AvatarBackground, "2C2F33"),
		orDefault(o.LeftTextColor, "FFFFFF"),
		orDefault(o.RightTextColor, "FFFFFF"),
		orDefault(o.LeftColor, "23272A"),
		orDefault(o.RightColor, "2C2F33"),
	)
}

// WidgetSmallURL builds the image URL of the default-styled small widget.
func (c *Client) WidgetSmallURL(botID string) string {
	if botID == "" {
		botID = c.resolvedID()
	}
	return fmt.Sprintf("%s/widget/lib/%s.png", c.api.baseURL, botID)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
