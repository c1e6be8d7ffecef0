package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/prospecta/internal/infra/http/middleware"
	"github.com/xavierca1/prospecta/internal/usecase"
)

// ReplyIngestionWorker roda a ingestão de respostas a cada 30 minutos.
// O corte de busca é now - intervalo, igual ao fluxo original.
type ReplyIngestionWorker struct {
	ingest       *usecase.IngestRepliesUseCase
	tickInterval time.Duration
}

func NewReplyIngestionWorker(ingest *usecase.IngestRepliesUseCase, tickInterval time.Duration) *ReplyIngestionWorker {
	if tickInterval <= 0 {
		tickInterval = 30 * time.Minute
	}
	return &ReplyIngestionWorker{
		ingest:       ingest,
		tickInterval: tickInterval,
	}
}

func (w *ReplyIngestionWorker) Start(ctx context.Context) {
	log.Printf("🕒 Reply Ingestion Worker iniciado (a cada %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Reply Ingestion Worker encerrado")
			return
		case <-ticker.C:
			w.runCycle(ctx)
		}
	}
}

func (w *ReplyIngestionWorker) runCycle(ctx context.Context) {
	log.Println("🔎 Rodando checagem de inbox...")

	since := time.Now().Add(-w.tickInterval)
	ingested, err := w.ingest.Execute(ctx, since)
	if err != nil {
		log.Printf("❌ Ciclo de ingestão falhou: %v", err)
		return
	}

	middleware.RecordRepliesIngested(ingested)
	if ingested > 0 {
		log.Printf("✅ %d resposta(s) ingerida(s)", ingested)
	}
}
