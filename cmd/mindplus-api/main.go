package main

import (
	"log"
	"net/http"

	"github.com/BuddhiniJ/Mindplus/internal/adapters/coping"
	"github.com/BuddhiniJ/Mindplus/internal/adapters/emotion"
	httpadapter "github.com/BuddhiniJ/Mindplus/internal/adapters/http"
	memstore "github.com/BuddhiniJ/Mindplus/internal/adapters/storage/memory"
	"github.com/BuddhiniJ/Mindplus/internal/app/chat"
	"github.com/BuddhiniJ/Mindplus/internal/config"
	"github.com/BuddhiniJ/Mindplus/internal/domain"
)

func main() {
	cfg := config.Load()

	// Emotion classifier: external service or offline keyword fallback.
	var classifier domain.EmotionClassifier
	if cfg.UseKeywordEmotion {
		log.Println("[EMOTION] Using keyword classifier")
		classifier = emotion.NewKeywordClassifier()
	} else {
		log.Printf("[EMOTION] Using emotion service at %s", cfg.EmotionServiceURL)
		client, err := emotion.NewClient(cfg.EmotionServiceURL)
		if err != nil {
			log.Fatalf("error initializing emotion client: %v", err)
		}
		classifier = client
	}

	strategies, err := coping.NewLookup()
	if err != nil {
		log.Fatalf("error loading coping strategies: %v", err)
	}

	sessions := memstore.NewSessionStore()

	svc := chat.NewService(classifier, sessions, strategies)
	handler := httpadapter.NewServer(svc)

	addr := ":" + cfg.Port
	log.Println("MindPlus API listening on port:", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
