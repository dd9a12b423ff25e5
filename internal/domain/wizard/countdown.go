package wizard

import (
	"sync"
	"time"
)

// SuccessCountdownSeconds é o tempo na tela de sucesso antes de ir para a vitrine
const SuccessCountdownSeconds = 4

// Countdown dispara onTick a cada intervalo com o tempo restante e onDone ao
// chegar a zero. Depois que Stop retorna nenhum callback é executado.
// Os callbacks não podem chamar Stop.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	stopped   bool
	stop      chan struct{}
}

func StartCountdown(seconds int, interval time.Duration, onTick func(remaining int), onDone func()) *Countdown {
	c := &Countdown{
		remaining: seconds,
		stop:      make(chan struct{}),
	}
	go c.run(interval, onTick, onDone)
	return c
}

func (c *Countdown) run(interval time.Duration, onTick func(int), onDone func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.stopped {
				c.mu.Unlock()
				return
			}
			c.remaining--
			if onTick != nil {
				onTick(c.remaining)
			}
			if c.remaining <= 0 {
				c.stopped = true
				if onDone != nil {
					onDone()
				}
				c.mu.Unlock()
				return
			}
			c.mu.Unlock()
		}
	}
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Stop cancela a contagem. Pode ser chamado mais de uma vez.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	close(c.stop)
}
