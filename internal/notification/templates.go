package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"planora.io/planora/internal/domain"
	errs "planora.io/planora/internal/pkg/errors"
)

// Rendered is the output of template resolution for one notification.
type Rendered struct {
	Subject string
	Text    string
	HTML    string
	SMS     string
}

// templateSet holds the parsed templates backing one notification type.
type templateSet struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
	sms     *texttemplate.Template
}

// Registry maps notification types to their templates. The mapping is
// fixed at construction; dispatching a type with no entry is a
// configuration error, never a silent drop.
type Registry struct {
	sets map[domain.NotificationType]*templateSet
}

type templateSource struct {
	subject string
	text    string
	html    string
	sms     string
}

// EVENTGUEST_RSVP and ALBUMFILE_UPLOAD are intentionally absent: they
// are declared in the type enumeration but have no delivery path yet.
var defaultSources = map[domain.NotificationType]templateSource{
	domain.NotifyEventInvite: {
		subject: `{{if .SenderName}}{{.SenderName}} invited you to {{.Title}}{{else}}You are invited to {{.Title}}{{end}}`,
		text: `{{if .SenderName}}{{.SenderName}} has invited you to an event.{{else}}You have been invited to an event.{{end}}

{{.Title}}
{{.StartDate}}{{if .Address}}
{{.Address}}{{end}}

RSVP here: {{.RSVPURL}}
Hosted by: {{.HostProfileURL}}
`,
		html: `<p>{{if .SenderName}}<a href="{{.HostProfileURL}}">{{.SenderName}}</a> has invited you to an event.{{else}}You have been invited to an event.{{end}}</p>
<h2>{{.Title}}</h2>
<p>{{.StartDate}}</p>{{if .Address}}
<p>{{.Address}}</p>{{end}}
<p><a href="{{.RSVPURL}}">RSVP</a></p>
`,
		sms: `{{if .SenderName}}{{.SenderName}} has invited you to an event.{{else}}You have been invited to an event.{{end}}
{{.RSVPURL}}`,
	},
	domain.NotifyEventCancel: {
		subject: `Cancelled: {{.Title}}`,
		text: `The event "{{.Title}}" has been cancelled.

{{.EventCancelledURL}}
`,
		html: `<p>The event <strong>{{.Title}}</strong> has been cancelled.</p>
<p><a href="{{.EventCancelledURL}}">Details</a></p>
`,
		sms: `{{if .SenderName}}{{.SenderName}} has cancelled an event.{{else}}The event "{{.Title}}" has been cancelled.{{end}}
{{.EventCancelledURL}}`,
	},
	domain.NotifyEventUpdate: {
		subject: `Updated: {{.Title}}`,
		text: `{{if .SenderName}}{{.SenderName}} has changed an event you are invited to.{{else}}An event you are invited to has changed.{{end}}

{{.Title}}
{{.StartDate}}{{if .Address}}
{{.Address}}{{end}}

RSVP here: {{.RSVPURL}}
`,
		html: `<p>{{if .SenderName}}{{.SenderName}} has changed an event you are invited to.{{else}}An event you are invited to has changed.{{end}}</p>
<h2>{{.Title}}</h2>
<p>{{.StartDate}}</p>{{if .Address}}
<p>{{.Address}}</p>{{end}}
<p><a href="{{.RSVPURL}}">RSVP</a></p>
`,
		sms: `{{if .SenderName}}{{.SenderName}} has changed an event you are invited to.{{else}}An event you are invited to has changed.{{end}}
{{.RSVPURL}}`,
	},
	domain.NotifyEmailValidate: {
		subject: `Confirm your email address`,
		text: `Confirm your email address ({{.Email}}) by following this link:

{{.ActivationURL}}

New here? Create an account: {{.RegisterURL}}
`,
		html: `<p>Confirm your email address ({{.Email}}) by clicking below.</p>
<p><a href="{{.ActivationURL}}">Confirm email</a></p>
<p>New here? <a href="{{.RegisterURL}}">Create an account</a></p>
`,
		sms: `Confirm your email address: {{.ActivationURL}}`,
	},
}

// NewRegistry parses the default template sources.
func NewRegistry() (*Registry, error) {
	r := &Registry{sets: make(map[domain.NotificationType]*templateSet, len(defaultSources))}
	for typ, src := range defaultSources {
		set, err := parseSet(string(typ), src)
		if err != nil {
			return nil, fmt.Errorf("parse templates for %s: %w", typ, err)
		}
		r.sets[typ] = set
	}
	return r, nil
}

func parseSet(name string, src templateSource) (*templateSet, error) {
	subject, err := texttemplate.New(name + ".subject").Parse(src.subject)
	if err != nil {
		return nil, err
	}
	text, err := texttemplate.New(name + ".txt").Parse(src.text)
	if err != nil {
		return nil, err
	}
	html, err := htmltemplate.New(name + ".htm").Parse(src.html)
	if err != nil {
		return nil, err
	}
	sms, err := texttemplate.New(name + ".sms").Parse(src.sms)
	if err != nil {
		return nil, err
	}
	return &templateSet{subject: subject, text: text, html: html, sms: sms}, nil
}

// Mapped reports whether the type has a template entry.
func (r *Registry) Mapped(typ domain.NotificationType) bool {
	_, ok := r.sets[typ]
	return ok
}

// Render resolves subject and bodies for a notification type. An
// unmapped type yields a configuration error: the system claims to
// support the type, so dropping it silently is not an option and
// retrying cannot help.
func (r *Registry) Render(typ domain.NotificationType, data map[string]any) (Rendered, error) {
	set, ok := r.sets[typ]
	if !ok {
		return Rendered{}, errs.Configuration(
			"NOTIFICATION_TEMPLATE_UNMAPPED",
			fmt.Sprintf("notification type %s has no template mapping", typ),
		)
	}

	out := Rendered{}
	var buf bytes.Buffer

	if err := set.subject.Execute(&buf, data); err != nil {
		return Rendered{}, fmt.Errorf("render %s subject: %w", typ, err)
	}
	out.Subject = buf.String()

	buf.Reset()
	if err := set.text.Execute(&buf, data); err != nil {
		return Rendered{}, fmt.Errorf("render %s text body: %w", typ, err)
	}
	out.Text = buf.String()

	buf.Reset()
	if err := set.html.Execute(&buf, data); err != nil {
		return Rendered{}, fmt.Errorf("render %s html body: %w", typ, err)
	}
	out.HTML = buf.String()

	buf.Reset()
	if err := set.sms.Execute(&buf, data); err != nil {
		return Rendered{}, fmt.Errorf("render %s sms body: %w", typ, err)
	}
	out.SMS = buf.String()

	return out, nil
}
