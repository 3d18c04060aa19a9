package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	suspension "Fulcrum/internal/calc/suspension"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

func main() {
	token := os.Getenv("TOKEN_BOT")
	if token == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				sendMessage(token, u.Message.Chat.ID, handleCommand(u.Message.Text))
			}
		}
		time.Sleep(1 * time.Second)
	}
}

// Commands work over the documented default setup with the rate and load
// swapped in: /sag <rate lbs/in> <load lbs>, /travel <free length> <stroke>.
func handleCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return helpText
	}

	switch fields[0] {
	case "/sag":
		if len(fields) != 3 {
			return "Usage: /sag <rate lbs/in> <load lbs>"
		}
		rate, err1 := strconv.ParseFloat(fields[1], 64)
		load, err2 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil {
			return "Rate and load must be numbers"
		}
		p := suspension.Defaults()
		p.RateLbsIn = rate
		p.LoadLbs = load
		res, err := suspension.Calculate(p)
		if err != nil {
			return "Calculation error: " + err.Error()
		}
		if res.BottomedOut {
			return fmt.Sprintf("Bottomed out: the %.0f lbs/in spring cannot hold %.0f lbs", rate, load)
		}
		return fmt.Sprintf("Sag %.1f mm (wheel rate %.1f lbs/in, spring force %.1f lbs)",
			res.SagMM, res.WheelRateAtSagLbsIn, res.SpringForceAtSagLbs)

	case "/travel":
		if len(fields) != 3 {
			return "Usage: /travel <free length mm> <stroke mm>"
		}
		freeLen, err1 := strconv.ParseFloat(fields[1], 64)
		stroke, err2 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil {
			return "Free length and stroke must be numbers"
		}
		p := suspension.Defaults()
		p.FreeLengthMM = freeLen
		p.StrokeMM = stroke
		res, err := suspension.Travel(p)
		if err != nil {
			return "Calculation error: " + err.Error()
		}
		return fmt.Sprintf("Wheel travel %.1f mm (swingarm %.4f to %.4f rad)",
			res.WheelTravelMM, res.ExtendedAngleRad, res.CompressedAngleRad)

	default:
		return helpText
	}
}

const helpText = "Commands:\n/sag <rate lbs/in> <load lbs>\n/travel <free length mm> <stroke mm>"

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{"chat_id": chatID, "text": text}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
