package order

import "github.com/sliques/SLQ-OrderService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
