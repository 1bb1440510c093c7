package message

import (
	"context"
	"image"
	"reflect"
	"testing"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"git.sr.ht/~gioverse/conversation/async"
	"git.sr.ht/~gioverse/conversation/cell"
	"git.sr.ht/~gioverse/conversation/model"
	chatmaterial "git.sr.ht/~gioverse/conversation/widget/material"
	"github.com/google/uuid"
)

var th = chatmaterial.NewTheme(gofont.Collection())

// blockingSource never produces a thumbnail before its context is done.
type blockingSource struct{}

func (blockingSource) Thumbnail(ctx context.Context, _ uuid.UUID, _ image.Point) (image.Image, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func newMessage(kind model.Kind) *model.Message {
	msg := model.New(kind, "alice", time.Date(2022, 9, 1, 12, 0, 0, 0, time.UTC))
	switch kind {
	case model.Text:
		msg.Text = "hi"
	case model.Image, model.Video, model.Audio, model.File:
		msg.Attachment = &model.Attachment{
			Name:     "report.pdf",
			Bytes:    1200000,
			Size:     image.Pt(800, 600),
			Duration: 90 * time.Second,
		}
	case model.Location:
		msg.Place = &model.Place{Name: "Office", Latitude: 52.52, Longitude: 13.405, Zoom: 12}
	}
	return msg
}

func fakeContext() layout.Context {
	var ops op.Ops
	return layout.NewContext(&ops, system.FrameEvent{
		Now: time.Now(),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Size: image.Pt(800, 600),
	})
}

func TestDescribePairsKinds(t *testing.T) {
	b := Builder{Theme: th}
	var table cell.Table
	type testcase struct {
		kind model.Kind
		name string
		view reflect.Type
		full bool
		desc reflect.Type
	}
	for _, tc := range []testcase{
		{
			kind: model.Text,
			name: TextKindName,
			view: reflect.TypeOf(&TextView{}),
			desc: reflect.TypeOf(&TextDescription{}),
		},
		{
			kind: model.Image,
			name: ImageKindName,
			view: reflect.TypeOf(&ImageView{}),
			full: true,
			desc: reflect.TypeOf(&ImageDescription{}),
		},
		{
			kind: model.Video,
			name: VideoKindName,
			view: reflect.TypeOf(&VideoView{}),
			full: true,
			desc: reflect.TypeOf(&VideoDescription{}),
		},
		{
			kind: model.Audio,
			name: AudioKindName,
			view: reflect.TypeOf(&AudioView{}),
			desc: reflect.TypeOf(&AudioDescription{}),
		},
		{
			kind: model.File,
			name: FileKindName,
			view: reflect.TypeOf(&FileView{}),
			desc: reflect.TypeOf(&FileDescription{}),
		},
		{
			kind: model.Location,
			name: LocationKindName,
			view: reflect.TypeOf(&LocationView{}),
			desc: reflect.TypeOf(&LocationDescription{}),
		},
	} {
		t.Run(tc.kind.String(), func(t *testing.T) {
			row := b.Describe(newMessage(tc.kind))
			if row.Kind() != tc.name {
				t.Errorf("expected kind %q, got %q", tc.name, row.Kind())
			}
			if got := reflect.TypeOf(row.Base()); got != tc.desc {
				t.Errorf("expected description %v, got %v", tc.desc, got)
			}
			if row.IsFullWidth() != tc.full {
				t.Errorf("expected full width %v", tc.full)
			}
			row.Register(&table)
			v := row.MakeView(&table, 0)
			if got := reflect.TypeOf(v); got != tc.view {
				t.Errorf("expected view %v, got %v", tc.view, got)
			}
			if !row.Configure(v, false) {
				t.Errorf("expected paired view to be configured")
			}
		})
	}
}

func TestTextScenario(t *testing.T) {
	b := Builder{Theme: th}
	msg := newMessage(model.Text)
	msg.Preview = &model.LinkPreview{Title: "Gio", URL: "https://gioui.org"}
	row := b.Describe(msg)
	if !row.ContainsHighlightableContent() {
		t.Errorf("expected a link to be highlightable")
	}

	var table cell.Table
	row.Register(&table)
	v := row.MakeView(&table, 0)
	row.Configure(v, false)
	tv := v.(*TextView)
	if tv.Config.Text != "hi" {
		t.Errorf("expected text %q, got %q", "hi", tv.Config.Text)
	}
	if !tv.Config.ShowsLinkPreview {
		t.Errorf("expected the link preview to be enabled")
	}
	if tv.Config != row.Base().(*TextDescription).Configuration() {
		t.Errorf("view shows %+v, not the description's configuration", tv.Config)
	}
}

func TestImageIntoVideoViewIsIgnored(t *testing.T) {
	b := Builder{Theme: th}
	img := b.Describe(newMessage(model.Image))
	var table cell.Table
	img.Register(&table)
	if _, ok := img.MakeView(&table, 0).(*ImageView); !ok {
		t.Fatalf("expected an image view")
	}

	video := NewVideoView(th, nil, nil)
	video.Configure(VideoConfiguration{Sender: "bob", Duration: time.Minute}, false)
	before := video.Config
	if img.Configure(video, false) {
		t.Errorf("expected the video view to be ignored")
	}
	if video.Config != before {
		t.Errorf("video view was mutated: %+v", video.Config)
	}
}

func TestConfigurationFollowsMessage(t *testing.T) {
	b := Builder{Theme: th}
	row := b.Describe(newMessage(model.File))
	desc := row.Base().(*FileDescription)
	if desc.Configuration().State != Remote {
		t.Errorf("expected a remote file")
	}

	downloaded := newMessage(model.File)
	downloaded.Attachment.Downloaded = true
	row.SetMessage(downloaded)
	if desc.Configuration().State != Downloaded {
		t.Errorf("expected the configuration to follow the new message")
	}

	row.SetMessage(nil)
	if desc.Configuration() != (FileConfiguration{}) {
		t.Errorf("expected an empty configuration without a message")
	}
}

func TestObfuscatedMessagesHaveNoActions(t *testing.T) {
	b := Builder{Theme: th}
	msg := newMessage(model.Image)
	row := b.Describe(msg)
	if !row.SupportsActions() {
		t.Errorf("expected actions on a regular image")
	}
	msg.Obfuscated = true
	if row.SupportsActions() {
		t.Errorf("expected no actions on an obfuscated image")
	}
}

func TestDescribeHandsOutCollaborators(t *testing.T) {
	var controllers int
	b := Builder{
		Theme: th,
		Actions: func(msg *model.Message) cell.ActionController {
			controllers++
			return nil
		},
	}
	msg := newMessage(model.Text)
	msg.Timeout = time.Minute
	row := b.Describe(msg)
	if controllers != 1 {
		t.Errorf("expected one action controller, got %d", controllers)
	}
	if !row.ShowEphemeralTimer() {
		t.Errorf("expected ephemeral messages to show their timer")
	}
	if row.Message() != cell.Message(msg) {
		t.Errorf("expected the row to hold the message")
	}
	row.WillDisplayCell()
	if _, started := msg.DestructAt(); !started {
		t.Errorf("expected displaying the row to start the countdown")
	}
}

func TestDescribeAllGroupsMargins(t *testing.T) {
	b := Builder{Theme: th}
	at := time.Date(2022, 9, 1, 12, 0, 0, 0, time.UTC)
	msg := func(sender string, offset time.Duration) *model.Message {
		m := model.New(model.Text, sender, at.Add(offset))
		m.Text = sender
		return m
	}
	rows := b.DescribeAll([]*model.Message{
		msg("alice", 0),
		msg("alice", time.Minute),
		msg("bob", 2*time.Minute),
		msg("bob", time.Hour),
	})
	expected := []float32{DefaultTopMargin, GroupedTopMargin, DefaultTopMargin, DefaultTopMargin}
	for ii, row := range rows {
		if row.TopMargin() != expected[ii] {
			t.Errorf("row %d: expected top margin %v, got %v", ii, expected[ii], row.TopMargin())
		}
	}
}

func TestDidEndDisplayingCancelsThumbnail(t *testing.T) {
	var loader async.Loader
	defer loader.Close()
	b := Builder{Theme: th, Thumbnails: &loader, Source: blockingSource{}}
	msg := newMessage(model.Image)
	row := b.Describe(msg)

	var table cell.Table
	row.Register(&table)
	v := row.MakeView(&table, 0)
	row.Configure(v, false)
	v.Layout(fakeContext())
	if stats := loader.Stats(); stats.Lookup != 1 {
		t.Fatalf("expected the thumbnail to be scheduled, got %+v", stats)
	}
	row.DidEndDisplayingCell()
	if stats := loader.Stats(); stats.Lookup != 0 {
		t.Errorf("expected the thumbnail load to be abandoned, got %+v", stats)
	}
}

func TestViewsLayout(t *testing.T) {
	b := Builder{Theme: th}
	var table cell.Table
	for _, kind := range []model.Kind{model.Text, model.Image, model.Video, model.Audio, model.File, model.Location} {
		t.Run(kind.String(), func(t *testing.T) {
			msg := newMessage(kind)
			row := b.Describe(msg)
			row.Register(&table)
			v := row.MakeView(&table, 0)
			row.Configure(v, true)
			dims := v.Layout(fakeContext())
			if dims.Size.X != 800 || dims.Size.Y <= 0 {
				t.Errorf("unexpected dimensions %v", dims.Size)
			}
			rect := v.SelectionRect()
			if rect.Empty() || !rect.In(image.Rectangle{Max: dims.Size}) {
				t.Errorf("selection rect %v should lie within %v", rect, dims.Size)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	type testcase struct {
		name     string
		got      string
		expected string
	}
	for _, tc := range []testcase{
		{name: "short duration", got: formatDuration(90 * time.Second), expected: "1:30"},
		{name: "long duration", got: formatDuration(time.Hour + 2*time.Minute + 3*time.Second), expected: "1:02:03"},
		{
			name:     "file details",
			got:      FileDetails(FileConfiguration{Bytes: 1200000, Extension: "PDF", State: Downloaded}),
			expected: "1.2 MB · PDF · Downloaded",
		},
		{
			name:     "coordinates",
			got:      Coordinates(LocationConfiguration{Latitude: 52.52, Longitude: 13.405}),
			expected: "52.5200, 13.4050",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, tc.got)
			}
		})
	}
}

func TestFileExtension(t *testing.T) {
	b := Builder{Theme: th}
	row := b.Describe(newMessage(model.File))
	c := row.Base().(*FileDescription).Configuration()
	if c.Extension != "PDF" || c.Name != "report.pdf" || c.Bytes != 1200000 {
		t.Errorf("unexpected file configuration %+v", c)
	}
}
