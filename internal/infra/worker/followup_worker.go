package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/prospecta/internal/infra/http/middleware"
	"github.com/xavierca1/prospecta/internal/usecase"
)

// FollowUpWorker roda o disparo de follow-ups a cada 60 minutos.
type FollowUpWorker struct {
	dispatch     *usecase.DispatchFollowUpsUseCase
	tickInterval time.Duration
}

func NewFollowUpWorker(dispatch *usecase.DispatchFollowUpsUseCase, tickInterval time.Duration) *FollowUpWorker {
	if tickInterval <= 0 {
		tickInterval = time.Hour
	}
	return &FollowUpWorker{
		dispatch:     dispatch,
		tickInterval: tickInterval,
	}
}

func (w *FollowUpWorker) Start(ctx context.Context) {
	log.Printf("🕒 Follow-up Worker iniciado (a cada %s, janela de 48h)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Follow-up Worker encerrado")
			return
		case <-ticker.C:
			w.runCycle(ctx)
		}
	}
}

func (w *FollowUpWorker) runCycle(ctx context.Context) {
	log.Println("🔎 Rodando checagem de follow-up...")

	dispatched, err := w.dispatch.Execute(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Ciclo de follow-up falhou: %v", err)
		return
	}

	middleware.RecordEmailsSent("follow-up", dispatched)
	if dispatched > 0 {
		log.Printf("✅ %d follow-up(s) enviado(s)", dispatched)
	}
}
