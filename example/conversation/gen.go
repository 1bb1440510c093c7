package main

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"git.sr.ht/~gioverse/conversation/model"
	lorem "github.com/drhodes/golorem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// local is the name of the local user.
const local = "me"

// sizes are the pixel sizes of generated images and videos.
var sizes = []image.Point{
	image.Pt(1792, 828),
	image.Pt(828, 1792),
	image.Pt(600, 600),
	image.Pt(300, 300),
}

var extensions = []string{"pdf", "zip", "txt", "png", "mp3"}

// title capitalizes generated names and link titles.
var title = cases.Title(language.English)

// Generate n messages between a few users, oldest first. A share of them is
// ephemeral.
func Generate(n int, ephemeral float64) []*model.Message {
	var (
		users = genUsers(2, 5)
		msgs  = make([]*model.Message, 0, n)
		at    = time.Now().Add(-time.Duration(n) * 3 * time.Minute)
	)
	for ii := 0; ii < n; ii++ {
		sender := users[rand.Intn(len(users))]
		at = at.Add(time.Duration(rand.Intn(6)) * time.Minute)
		msg := genMessage(sender, at)
		if rand.Float64() < ephemeral {
			msg.Timeout = time.Duration(10+rand.Intn(50)) * time.Second
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// genUsers generates between min and max users, the local user included.
func genUsers(min, max int) []string {
	users := []string{local}
	for ii := rand.Intn(max-min) + min; ii > 0; ii-- {
		users = append(users, lorem.Word(4, 10))
	}
	return users
}

// genMessage generates a message of a random kind, mostly text.
func genMessage(sender string, at time.Time) *model.Message {
	kind := model.Text
	if rand.Float32() > 0.6 {
		kind = model.Kind(1 + rand.Intn(int(model.Location)))
	}
	msg := model.New(kind, sender, at)
	msg.Local = sender == local
	switch kind {
	case model.Text:
		msg.Text = lorem.Paragraph(1, 3)
		if rand.Float32() < 0.2 {
			host := lorem.Word(4, 10) + ".org"
			msg.Text += " https://" + host
			msg.Preview = &model.LinkPreview{
				Title: title.String(lorem.Sentence(2, 5)),
				URL:   "https://" + host,
			}
		}
	case model.Image, model.Video:
		msg.Attachment = &model.Attachment{
			Size:     sizes[rand.Intn(len(sizes))],
			Duration: time.Duration(rand.Intn(600)) * time.Second,
		}
	case model.Audio:
		msg.Attachment = &model.Attachment{
			Duration: time.Duration(5+rand.Intn(300)) * time.Second,
			Progress: rand.Float32(),
		}
	case model.File:
		ext := extensions[rand.Intn(len(extensions))]
		msg.Attachment = &model.Attachment{
			Name:       fmt.Sprintf("%s.%s", lorem.Word(4, 12), ext),
			Bytes:      rand.Int63n(50 << 20),
			Downloaded: rand.Float32() < 0.5,
		}
	case model.Location:
		msg.Place = &model.Place{
			Name:      title.String(lorem.Word(4, 12)),
			Latitude:  rand.Float64()*180 - 90,
			Longitude: rand.Float64()*360 - 180,
			Zoom:      10 + rand.Intn(8),
		}
	}
	return msg
}
